package lesson

import "fmt"

// Lesson is an entry of the micro-course.
type Lesson struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

var lessons = []Lesson{
	{Index: 1, Title: "Introduction to Stock Markets", Description: "Learn the basics of how stock markets work and why they matter", Difficulty: "Beginner"},
	{Index: 2, Title: "Reading Stock Trends", Description: "Understand charts, patterns, and technical indicators", Difficulty: "Intermediate"},
	{Index: 3, Title: "Mutual Funds Explained", Description: "Diversification, NAV, and choosing the right funds", Difficulty: "Beginner"},
}

// Lessons returns the seeded lessons in order.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessons))
	copy(out, lessons)
	return out
}

// Get returns the lesson at index, if it is part of the seeded set.
func Get(index int) (Lesson, bool) {
	if index < 1 || index > len(lessons) {
		return Lesson{}, false
	}
	return lessons[index-1], true
}

// AchievementKey is the achievement granted for completing the lesson at index.
func AchievementKey(index int) string {
	return fmt.Sprintf("lesson_%d_complete", index)
}
