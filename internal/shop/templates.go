package shop

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"ushop/internal/catalog"
	"ushop/internal/session"
)

//go:embed templates/*.html
var htmlFiles embed.FS

var Listing,
	Detail,
	Cart,
	Wishlist,
	Unavailable *template.Template

// listingData adds the raw query to the listing page so forms can keep their
// checked filters across renders.
type listingData struct {
	session.ListingPage
	Query url.Values
}

func (d listingData) Checked(param, value string) bool {
	for _, v := range d.Query[param] {
		if v == value {
			return true
		}
	}
	return false
}

func (d listingData) QueryValue(param string) string {
	return d.Query.Get(param)
}

// Ratings are the minimum-rating radio choices.
func (d listingData) Ratings() []string {
	return []string{"4", "3", "2", "1"}
}

func (d listingData) PrevPage() int {
	if d.CurrentPage > 1 {
		return d.CurrentPage - 1
	}
	return 1
}

func (d listingData) NextPage() int {
	if d.CurrentPage < d.TotalPages {
		return d.CurrentPage + 1
	}
	return d.TotalPages
}

// PageURL rebuilds the current query with a different page number so
// pagination keeps the active filters.
func (d listingData) PageURL(page int) string {
	query := url.Values{}
	for k, vs := range d.Query {
		query[k] = vs
	}
	query.Set("page", strconv.Itoa(page))
	return "/?" + query.Encode()
}

func init() {
	funcs := template.FuncMap{
		"money": func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		},
		"priceInfo": func(p catalog.Product) catalog.PriceInfo {
			return catalog.GetPriceInfo(p.Price, p.DiscountPercentage)
		},
		"stars": starsHTML,
	}
	tmpls := template.Must(template.New("all").Funcs(funcs).ParseFS(htmlFiles, "templates/*.html"))
	Listing = ensure(tmpls, "listing.html")
	Detail = ensure(tmpls, "detail.html")
	Cart = ensure(tmpls, "cart.html")
	Wishlist = ensure(tmpls, "wishlist.html")
	Unavailable = ensure(tmpls, "unavailable.html")
}

func ensure(templates *template.Template, name string) *template.Template {
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		panic("template " + name + " not found")
	}
	return tmpl
}

// starsHTML renders a rating as the font-awesome star row the storefront has
// always used.
func starsHTML(rating float64) template.HTML {
	s := catalog.RatingStars(rating)

	var b strings.Builder
	b.WriteString(strings.Repeat(`<i class="fas fa-star"></i>`, s.Full))
	if s.Half {
		b.WriteString(`<i class="fas fa-star-half-alt"></i>`)
	}
	b.WriteString(strings.Repeat(`<i class="far fa-star"></i>`, s.Empty))
	return template.HTML(b.String())
}
