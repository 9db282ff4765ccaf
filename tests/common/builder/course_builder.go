//go:build unit || e2e

package builder

import (
	"fmt"

	"course-cart/internal/domain/course"

	"github.com/brianvoe/gofakeit/v7"
)

type CourseBuilder struct {
	course course.Course
}

// NewCourseBuilder starts from a random catalog entry priced in so'm.
func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		course: course.Course{
			ID:       gofakeit.IntRange(1, 1_000_000),
			Title:    gofakeit.JobTitle() + " course",
			Price:    fmt.Sprintf("%d,000 so'm/oy", gofakeit.IntRange(100, 900)),
			Duration: fmt.Sprintf("%d oy", gofakeit.IntRange(1, 12)),
			Level:    gofakeit.RandomString([]string{"Beginner", "Intermediate", "Advanced"}),
			Image:    gofakeit.URL(),
		},
	}
}

func (b *CourseBuilder) WithID(id int) *CourseBuilder {
	b.course.ID = id
	return b
}

func (b *CourseBuilder) WithTitle(title string) *CourseBuilder {
	b.course.Title = title
	return b
}

func (b *CourseBuilder) WithPrice(price string) *CourseBuilder {
	b.course.Price = price
	return b
}

func (b *CourseBuilder) WithDescription(d string) *CourseBuilder {
	b.course.Description = d
	return b
}

func (b *CourseBuilder) Build() course.Course {
	return b.course
}

// Courses builds n entries with ids 1..n.
func Courses(n int) []course.Course {
	out := make([]course.Course, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewCourseBuilder().WithID(i).Build())
	}
	return out
}
