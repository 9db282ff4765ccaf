package queries

import "course-cart/internal/domain/course"

// CartView is the cart with its derived totals.
type CartView struct {
	Items             []course.Course
	TotalItems        int
	TotalPrice        int64
	TotalPriceDisplay string
}

// CourseListView is an ordered list of courses with its length.
type CourseListView struct {
	Items []course.Course
	Total int
}

func newCourseList(items []course.Course) *CourseListView {
	return &CourseListView{Items: items, Total: len(items)}
}
