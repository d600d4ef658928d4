// Package views holds the embedded HTML templates and static assets of the
// checkout pages.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	request "pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/session"
	"pix_checkout/internal/domain/display"
)

const (
	CheckoutTemplate = "checkout.html"
	PaymentTemplate  = "pagamento.html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type CheckoutPage struct {
	Title       string
	Description string
	AmountLabel string
	Form        request.CheckoutFormRequest
	Errors      map[string]string
	Toasts      []session.Toast
}

type PaymentPage struct {
	View        display.View
	QRDataURI   string
	AmountLabel string
	RedirectMs  int64

	// Toasts the page script raises on copy and on expiry.
	Copied     session.Toast
	CopyFailed session.Toast
	Expired    session.Toast
}

var funcs = template.FuncMap{
	// dataURI marks a renderer-produced data: URI as safe for img src.
	"dataURI": func(s string) template.URL { return template.URL(s) },
}

// Templates parses every page template; names are the file base names.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// Static serves the CSS and JS assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
