package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adyen/storefront-ui/internal/models"
	"github.com/adyen/storefront-ui/internal/services"
)

// CartLineView is one cart line as rendered on the cart page
type CartLineView struct {
	Product  *models.Product
	Quantity int
	Total    string
}

// CartData represents the data passed to the cart template
type CartData struct {
	Lines []CartLineView
	Total string
	Count int
}

// AccountData represents the data passed to the account and favorites templates
type AccountData struct {
	Email     string
	Favorites []*models.Product
}

// ContactData represents the data passed to the contact template
type ContactData struct {
	Sent  bool
	Error string
}

// AccountHandler renders the account area, the cart and the contact form
type AccountHandler struct {
	pageHandler
	log logrus.FieldLogger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(renderer *Renderer, catalog services.CatalogService, logger logrus.FieldLogger) *AccountHandler {
	return &AccountHandler{
		pageHandler: pageHandler{renderer: renderer, catalog: catalog},
		log:         logger,
	}
}

// Account handles GET /account; anonymous visitors are sent to the login page
func (h *AccountHandler) Account(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	if !session.IsSignedIn() {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	h.render(w, r, "account", "My account", AccountData{Email: session.Email})
}

// Favorites handles GET /account/favorites
func (h *AccountHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)
	if !session.IsSignedIn() {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	data := AccountData{Email: session.Email}
	for _, id := range session.Favorites {
		product, err := h.catalog.GetProduct(id)
		if err != nil {
			h.log.WithError(err).WithField("product", id).Warn("Skipping unknown favorite")
			continue
		}
		data.Favorites = append(data.Favorites, product)
	}
	h.render(w, r, "favorites", "My favorites", data)
}

// Cart handles GET /cart
func (h *AccountHandler) Cart(w http.ResponseWriter, r *http.Request) {
	session := SessionFrom(r)

	var data CartData
	var total int64
	for _, line := range session.Lines {
		product, err := h.catalog.GetProduct(line.ProductID)
		if err != nil {
			h.log.WithError(err).WithField("product", line.ProductID).Warn("Skipping unknown cart line")
			continue
		}
		lineTotal := product.Price * int64(line.Quantity)
		data.Lines = append(data.Lines, CartLineView{
			Product:  product,
			Quantity: line.Quantity,
			Total:    models.FormatPrice(lineTotal),
		})
		total += lineTotal
		data.Count += line.Quantity
	}
	data.Total = models.FormatPrice(total)

	h.render(w, r, "cart", "Cart", data)
}

// Contact handles GET and POST /contact
func (h *AccountHandler) Contact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, "contact", "Contact", ContactData{})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(r.PostForm.Get("email")) == "" || strings.TrimSpace(r.PostForm.Get("message")) == "" {
			h.render(w, r, "contact", "Contact", ContactData{Error: "Email and message are required"})
			return
		}
		h.log.WithField("subject", r.PostForm.Get("subject")).Info("Contact message received")
		h.render(w, r, "contact", "Contact", ContactData{Sent: true})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
