package request

import (
	"course-cart/internal/domain/course"
	"course-cart/internal/domain/payment"
	"course-cart/internal/usecase/commands"
)

// CourseRequest is a catalog entry posted to the cart, purchases or favorites.
type CourseRequest struct {
	ID          *int   `json:"id" binding:"required,min=1"`
	Title       string `json:"title" binding:"max=200"`
	Price       string `json:"price" binding:"max=64"`
	Duration    string `json:"duration" binding:"max=64"`
	Level       string `json:"level" binding:"max=64"`
	Image       string `json:"image" binding:"max=2048"`
	Description string `json:"description" binding:"max=2000"`
}

func (r *CourseRequest) ToDomain() course.Course {
	return course.Course{
		ID:          *r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Duration:    r.Duration,
		Level:       r.Level,
		Image:       r.Image,
		Description: r.Description,
	}
}

// UpdateQuantityRequest accepts any integer; below 1 removes the entry.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	Method  string          `json:"method" binding:"required"`
	Details payment.Details `json:"details"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{Method: r.Method, Details: r.Details}
}
