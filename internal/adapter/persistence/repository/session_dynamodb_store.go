package repository

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const defaultSessionsTableName = "checkout_sessions"

// DynamoDBAPI is the subset of *dynamodb.Client the session store needs.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Data      string `dynamodbav:"data"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// SessionDynamoStore is a gorilla/sessions Store keeping session values in
// DynamoDB. The cookie only carries the signed session id and is a browser
// session cookie; the item TTL bounds the server side.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (unix seconds)
type SessionDynamoStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options

	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ sessions.Store = (*SessionDynamoStore)(nil)

func NewSessionDynamoStore(ddb DynamoDBAPI, tableName string, ttl time.Duration, keyPairs ...[]byte) *SessionDynamoStore {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			// values live in DynamoDB, not in the cookie
			sc.MaxLength(0)
			sc.MaxAge(int(ttl / time.Second))
		}
	}
	return &SessionDynamoStore{
		Codecs: codecs,
		Options: &sessions.Options{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *SessionDynamoStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the stored session for the request cookie, or a fresh one. A
// tampered cookie yields a fresh session together with the decode error.
func (s *SessionDynamoStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		session.ID = ""
		return session, err
	}

	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	session.IsNew = !found
	return session, nil
}

// Save writes the session and its cookie. A negative MaxAge deletes both.
func (s *SessionDynamoStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.erase(r.Context(), session.ID); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *SessionDynamoStore) load(ctx context.Context, session *sessions.Session) (bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: session.ID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	// TTL deletion is lazy on DynamoDB's side.
	if it.ExpiresAt > 0 && s.now().Unix() >= it.ExpiresAt {
		return false, nil
	}
	if err := securecookie.DecodeMulti(session.Name(), it.Data, &session.Values, s.Codecs...); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionDynamoStore) save(ctx context.Context, session *sessions.Session) error {
	data, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(sessionItem{
		ID:        session.ID,
		Data:      data,
		ExpiresAt: s.now().Add(s.ttl).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *SessionDynamoStore) erase(ctx context.Context, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
