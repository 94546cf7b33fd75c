package telegram

import (
	"fmt"
	"strings"
)

// FormatLessonUnlocked renders the message sent when a user unlocks a lesson.
func FormatLessonUnlocked(lessonIndex int, title, criteriaDescription string, streakDays int) string {
	var b strings.Builder
	b.WriteString("🎓 *Lesson unlocked!*\n\n")
	b.WriteString(fmt.Sprintf("📚 *Lesson %d:* %s\n", lessonIndex, escapeMarkdown(title)))
	b.WriteString(fmt.Sprintf("✅ *Completed:* %s\n", escapeMarkdown(criteriaDescription)))
	if streakDays > 0 {
		b.WriteString(fmt.Sprintf("🔥 *Current streak:* %d day(s)\n", streakDays))
	}
	b.WriteString("\nKeep going, your next lesson is waiting.")
	return b.String()
}

// escapeMarkdown escapes the characters that legacy Telegram Markdown treats as markup.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")
	return replacer.Replace(s)
}
