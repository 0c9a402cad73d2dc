package pages

import (
	"errors"
	"strconv"
	"strings"

	"github.com/adyen/storefront-ui/internal/browser"
	"github.com/adyen/storefront-ui/internal/locator"
	"github.com/adyen/storefront-ui/internal/pageobject"
)

// ProductPath is the product page URL template
const ProductPath = "/product/**"

// DefaultQuantity is used by AddToCart for non-positive quantities and by
// CurrentQuantity when the field cannot be read as a number
const DefaultQuantity = 1

// Product validation errors
var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrAddToCartDisabled = errors.New("add to cart button is not enabled")
)

// Product page locator names
const (
	ProductTitle             locator.Name = "productTitle"
	ProductPrice             locator.Name = "productPrice"
	ProductDescription       locator.Name = "productDescription"
	ProductImage             locator.Name = "productImage"
	ProductAddToCart         locator.Name = "addToCartButton"
	ProductQuantityInput     locator.Name = "quantityInput"
	ProductIncreaseQuantity  locator.Name = "increaseQuantityButton"
	ProductDecreaseQuantity  locator.Name = "decreaseQuantityButton"
	ProductBrand             locator.Name = "productBrand"
	ProductCategory          locator.Name = "productCategory"
	ProductStock             locator.Name = "productStock"
	ProductRelatedProducts   locator.Name = "relatedProducts"
	ProductReviews           locator.Name = "productReviews"
	ProductAddToFavorites    locator.Name = "addToFavoritesButton"
	ProductShareButton       locator.Name = "shareButton"
	ProductBreadcrumb        locator.Name = "breadcrumbNav"
	ProductBackButton        locator.Name = "backButton"
	ProductGallery           locator.Name = "productGallery"
	ProductGalleryThumbnails locator.Name = "galleryThumbnails"
)

var productRegistry = locator.NewRegistry("product",
	locator.Define(ProductTitle, "product-title"),
	locator.Define(ProductPrice, "product-price"),
	locator.Define(ProductDescription, "product-description"),
	locator.Define(ProductImage, "product-image"),
	locator.Define(ProductAddToCart, "add-to-cart"),
	locator.Define(ProductQuantityInput, "quantity"),
	locator.Define(ProductIncreaseQuantity, "increase-quantity"),
	locator.Define(ProductDecreaseQuantity, "decrease-quantity"),
	locator.Define(ProductBrand, "product-brand"),
	locator.Define(ProductCategory, "product-category"),
	locator.Define(ProductStock, "product-stock"),
	locator.Define(ProductRelatedProducts, "related-products"),
	locator.Define(ProductReviews, "product-reviews"),
	locator.Define(ProductAddToFavorites, "add-to-favorites"),
	locator.Define(ProductShareButton, "share-product"),
	locator.Define(ProductBreadcrumb, "breadcrumb"),
	locator.Define(ProductBackButton, "back-button"),
	locator.Define(ProductGallery, "product-gallery"),
	locator.Define(ProductGalleryThumbnails, "gallery-thumbnail"),
)

// ProductRegistry returns the product page's locator registry
func ProductRegistry() locator.Registry {
	return productRegistry
}

// ProductPage is a single product's detail page
type ProductPage struct {
	*pageobject.Base
}

// NewProductPage creates a product page object bound to page
func NewProductPage(page browser.Page, opts pageobject.Options) *ProductPage {
	return &ProductPage{
		Base: pageobject.New(page, ProductPath, productRegistry, opts),
	}
}

// NavigateToProduct opens the product with the given id
func (p *ProductPage) NavigateToProduct(id string) error {
	return p.NavigateTo("/product/" + id)
}

// AddToCart sets the quantity, clicks add-to-cart and waits for the page to settle
func (p *ProductPage) AddToCart(quantity int) error {
	if quantity < 1 {
		quantity = DefaultQuantity
	}
	if err := p.SetQuantity(quantity); err != nil {
		return err
	}
	if err := p.Click(ProductAddToCart); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// SetQuantity replaces the quantity field's value
func (p *ProductPage) SetQuantity(quantity int) error {
	return p.FillText(ProductQuantityInput, strconv.Itoa(quantity))
}

// IncreaseQuantity clicks the plus button once
func (p *ProductPage) IncreaseQuantity() error {
	return p.Click(ProductIncreaseQuantity)
}

// DecreaseQuantity clicks the minus button once
func (p *ProductPage) DecreaseQuantity() error {
	return p.Click(ProductDecreaseQuantity)
}

// AddToFavorites clicks the favorites button
func (p *ProductPage) AddToFavorites() error {
	return p.Click(ProductAddToFavorites)
}

// ShareProduct clicks the share button
func (p *ProductPage) ShareProduct() error {
	return p.Click(ProductShareButton)
}

// GoBack follows the back button
func (p *ProductPage) GoBack() error {
	if err := p.Click(ProductBackButton); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// SelectGalleryImage clicks the index-th gallery thumbnail
func (p *ProductPage) SelectGalleryImage(index int) error {
	return p.ClickNth(ProductGalleryThumbnails, index)
}

// ClickRelatedProduct opens the index-th related product
func (p *ProductPage) ClickRelatedProduct(index int) error {
	if err := p.ClickNth(ProductRelatedProducts, index); err != nil {
		return err
	}
	return p.WaitForPageLoad()
}

// Title returns the product name heading
func (p *ProductPage) Title() (string, error) {
	return p.Text(ProductTitle)
}

// Price returns the displayed price, currency sign included
func (p *ProductPage) Price() (string, error) {
	return p.Text(ProductPrice)
}

// Description returns the product description
func (p *ProductPage) Description() (string, error) {
	return p.Text(ProductDescription)
}

// Brand returns the brand name
func (p *ProductPage) Brand() (string, error) {
	return p.Text(ProductBrand)
}

// Category returns the category name
func (p *ProductPage) Category() (string, error) {
	return p.Text(ProductCategory)
}

// Stock returns the availability label
func (p *ProductPage) Stock() (string, error) {
	return p.Text(ProductStock)
}

// CurrentQuantity reads the quantity field, falling back to DefaultQuantity
// when it is empty, unreadable or not a number
func (p *ProductPage) CurrentQuantity() int {
	value, err := p.InputValue(ProductQuantityInput)
	if err != nil {
		p.Logger().WithError(err).Debug("quantity unreadable, using default")
		return DefaultQuantity
	}
	return pageobject.IntOrDefault(value, DefaultQuantity)
}

// RelatedProductsCount returns how many related product cards are shown
func (p *ProductPage) RelatedProductsCount() (int, error) {
	return p.Count(ProductRelatedProducts)
}

// GalleryImagesCount returns how many gallery thumbnails are shown
func (p *ProductPage) GalleryImagesCount() (int, error) {
	return p.Count(ProductGalleryThumbnails)
}

// ValidateProductPageLoaded asserts title, price and add-to-cart are shown
func (p *ProductPage) ValidateProductPageLoaded() error {
	for _, name := range []locator.Name{ProductTitle, ProductPrice, ProductAddToCart} {
		if err := p.ValidateElementVisible(name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateProductInformation asserts the title, and the price unless it is empty
func (p *ProductPage) ValidateProductInformation(title, price string) error {
	if err := p.ValidateElementText(ProductTitle, title); err != nil {
		return err
	}
	if price == "" {
		return nil
	}
	return p.ValidateElementText(ProductPrice, price)
}

// ValidateQuantity asserts the quantity field reads expected
func (p *ProductPage) ValidateQuantity(expected int) error {
	if actual := p.CurrentQuantity(); actual != expected {
		return &browser.AssertionFailure{
			Check:    "quantity",
			Target:   p.Registry().Owner() + "." + string(ProductQuantityInput),
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}

// ValidateAddToCartEnabled fails with ErrAddToCartDisabled when the button is disabled
func (p *ProductPage) ValidateAddToCartEnabled() error {
	enabled, err := p.IsEnabled(ProductAddToCart)
	if err != nil {
		return err
	}
	if !enabled {
		return ErrAddToCartDisabled
	}
	return nil
}

// ValidateInStock fails with ErrOutOfStock when the stock label says "out of stock"
func (p *ProductPage) ValidateInStock() error {
	stock, err := p.Stock()
	if err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(stock), "out of stock") {
		return ErrOutOfStock
	}
	return nil
}
