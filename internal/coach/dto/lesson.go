package dto

// LessonResponse describes a lesson and whether the user unlocked it.
type LessonResponse struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Unlocked    bool   `json:"unlocked"`
}

// CriteriaResponse describes the criteria of the next lesson and whether they are met.
type CriteriaResponse struct {
	LessonIndex int    `json:"lesson_index"`
	Key         string `json:"key"`
	Description string `json:"description"`
	Met         bool   `json:"met"`
}

// LessonStatusResponse is the lesson progress of a user.
type LessonStatusResponse struct {
	LessonProgress int              `json:"lesson_progress"`
	StreakDays     int              `json:"streak_days"`
	Next           CriteriaResponse `json:"next"`
	Lessons        []LessonResponse `json:"lessons"`
	Achievements   []string         `json:"achievements"`
}

// AdvanceResponse is the result of a lesson advance.
type AdvanceResponse struct {
	LessonProgress int    `json:"lesson_progress"`
	Achievement    string `json:"achievement"`
	Message        string `json:"message"`
}
