package response

import (
	"course-cart/internal/domain/course"
	"course-cart/internal/domain/payment"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourseResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// FromCourses maps entries field by field; nil maps to an empty slice.
func FromCourses(items []course.Course) ([]CourseResponse, error) {
	out := make([]CourseResponse, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &items); err != nil {
		return nil, errs.Wrap(err, "copier.Copy courses")
	}
	return out, nil
}

type CartResponse struct {
	Items             []CourseResponse `json:"items"`
	TotalItems        int              `json:"total_items"`
	TotalPrice        int64            `json:"total_price"`
	TotalPriceDisplay string           `json:"total_price_display"`
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	items, err := FromCourses(v.Items)
	if err != nil {
		return nil, err
	}
	return &CartResponse{
		Items:             items,
		TotalItems:        v.TotalItems,
		TotalPrice:        v.TotalPrice,
		TotalPriceDisplay: v.TotalPriceDisplay,
	}, nil
}

type CourseListResponse struct {
	Items []CourseResponse `json:"items"`
	Total int              `json:"total"`
}

func FromCourseList(v *queries.CourseListView) (*CourseListResponse, error) {
	items, err := FromCourses(v.Items)
	if err != nil {
		return nil, err
	}
	return &CourseListResponse{Items: items, Total: v.Total}, nil
}

// ChangeResponse reports whether a mutation altered the collection.
type ChangeResponse struct {
	ID      int  `json:"id"`
	Changed bool `json:"changed"`
}

type InCartResponse struct {
	ID     int  `json:"id"`
	InCart bool `json:"in_cart"`
}

type PurchasedResponse struct {
	ID        int  `json:"id"`
	Purchased bool `json:"purchased"`
}

type ReceiptResponse struct {
	ID           string           `json:"id"`
	ProfileID    string           `json:"profile_id"`
	Method       string           `json:"method"`
	Items        []CourseResponse `json:"items"`
	Total        int64            `json:"total"`
	TotalDisplay string           `json:"total_display"`
	PaidAt       int64            `json:"paid_at"`
}

func FromReceipt(r *payment.Receipt) (*ReceiptResponse, error) {
	items, err := FromCourses(r.Items)
	if err != nil {
		return nil, err
	}
	return &ReceiptResponse{
		ID:           r.ID.String(),
		ProfileID:    r.ProfileID,
		Method:       string(r.Method),
		Items:        items,
		Total:        r.Total,
		TotalDisplay: r.TotalDisplay,
		PaidAt:       r.PaidAt.Unix(),
	}, nil
}
