package session

import (
	"net/http"
	"time"

	"pix_checkout/internal/adapter/persistence/repository"
	"pix_checkout/internal/config"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// NewStore builds the session store named by SESSION_STORE. ddb may be nil
// unless the DynamoDB store is selected.
func NewStore(cfg config.SessionConfig, ddb repository.DynamoDBAPI, logger *zap.Logger) sessions.Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("session")

	key := []byte(cfg.Secret)
	if len(key) == 0 {
		log.Warn("SESSION_SECRET not set; using a random key, sessions will not survive restarts")
		key = securecookie.GenerateRandomKey(32)
	}

	if cfg.Store == config.SessionStoreDynamoDB && ddb != nil {
		store := repository.NewSessionDynamoStore(ddb, cfg.TableName, cfg.TTL, key)
		store.Options.Secure = cfg.Secure
		log.Info("using dynamodb session store", zap.String("table", cfg.TableName))
		return store
	}
	if cfg.Store == config.SessionStoreDynamoDB {
		log.Warn("dynamodb session store requested without a client; falling back to cookies")
	}

	// Session cookie: the slot goes away with the browser session. The
	// codec max age still rejects replays older than the TTL.
	store := sessions.NewCookieStore(key)
	for _, c := range store.Codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(cfg.TTL / time.Second))
		}
	}
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
