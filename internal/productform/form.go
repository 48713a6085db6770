// Package productform models the product create/edit form as an explicit
// state value plus pure transition functions, so the whole flow is testable
// without a rendering layer. Handlers hold a State, feed it through
// Validate/ApplyUploadSuccess/ApplyRemoval, and use Client to talk to the
// upload and product endpoints.
package productform

import (
	"fmt"
	"strconv"
	"strings"

	"pasar/internal/models"
)

// State is the full local state of the product form. A zero ProductID means
// the form is creating a new listing; otherwise it is editing that listing.
// Loading and UploadingImage are the two busy flags: while either is set the
// matching operation refuses to start again.
type State struct {
	ProductID uint
	SellerID  uint

	// Raw user input. Price and Quantity stay strings until submission so
	// validation sees exactly what the user typed.
	Title       string
	Description string
	Price       string
	Quantity    string
	Category    string

	// Images is the ordered list of uploaded URLs; ImageBinaries maps each
	// URL to its base64 payload for instant preview.
	Images        []string
	ImageBinaries map[string]string

	Loading        bool
	UploadingImage bool
}

// NewState returns an empty form for the given seller.
func NewState(sellerID uint) State {
	return State{
		SellerID:      sellerID,
		ImageBinaries: map[string]string{},
	}
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// ValidationError wraps field-level errors; it blocks submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed: %d invalid field(s)", len(e.Fields))
}

// Validate checks every field and returns the per-field errors. An empty
// result means the form may be submitted.
func Validate(s State) FieldErrors {
	errs := FieldErrors{}

	if len(s.Title) < 5 {
		errs["title"] = "title must be at least 5 characters"
	}
	if len(s.Description) < 20 {
		errs["description"] = "description must be at least 20 characters"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(s.Price), 64)
	if err != nil || price <= 0 {
		errs["price"] = "price must be a positive number"
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(s.Quantity))
	if err != nil || quantity < 0 {
		errs["quantity"] = "quantity must be a non-negative integer"
	}

	if !models.ValidCategory(s.Category) {
		errs["category"] = "category must be chosen from the list"
	}
	if len(s.Images) == 0 {
		errs["images"] = "at least one image is required"
	}

	return errs
}

// ApplyUploadSuccess returns a new state with the uploaded image appended to
// the ordered list and its preview payload recorded. The input state is not
// mutated.
func ApplyUploadSuccess(s State, url, data string) State {
	images := make([]string, 0, len(s.Images)+1)
	images = append(images, s.Images...)
	images = append(images, url)

	binaries := make(map[string]string, len(s.ImageBinaries)+1)
	for k, v := range s.ImageBinaries {
		binaries[k] = v
	}
	binaries[url] = data

	s.Images = images
	s.ImageBinaries = binaries
	s.UploadingImage = false
	return s
}

// ApplyRemoval returns a new state with the image at index removed from both
// the ordered list and the preview mapping. Out-of-range indexes leave the
// state unchanged. The server-side file is not touched; orphaned uploads are
// an accepted limitation.
func ApplyRemoval(s State, index int) State {
	if index < 0 || index >= len(s.Images) {
		return s
	}

	url := s.Images[index]

	images := make([]string, 0, len(s.Images)-1)
	images = append(images, s.Images[:index]...)
	images = append(images, s.Images[index+1:]...)

	binaries := make(map[string]string, len(s.ImageBinaries))
	for k, v := range s.ImageBinaries {
		if k != url {
			binaries[k] = v
		}
	}

	s.Images = images
	s.ImageBinaries = binaries
	return s
}

// Reset clears every field and image, keeping only the seller. Used after a
// successful creation; updates keep their state.
func Reset(s State) State {
	return NewState(s.SellerID)
}

// Payload is the body sent to the product create/update endpoints. Price is
// deliberately kept as the raw string the user typed; the server parses it.
// ImageBinaries is the preview mapping serialized to a JSON string.
type Payload struct {
	SellerID          uint     `json:"sellerId"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Price             string   `json:"price"`
	QuantityAvailable int      `json:"quantityAvailable"`
	Category          string   `json:"category"`
	Images            []string `json:"images"`
	ImageBinaries     string   `json:"imageBinaries"`
}
