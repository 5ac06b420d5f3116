package handler

import (
	"fmt"
	"strings"

	"vocadeck/internal/deck"
	"vocadeck/internal/domain"
	"vocadeck/internal/quiz"
	"vocadeck/internal/service"

	tele "gopkg.in/telebot.v3"
)

const errorText = "Đã xảy ra lỗi. Vui lòng thử lại sau."

func modeLabel(mode domain.QuizMode) string {
	switch mode {
	case domain.ModeMultipleChoice:
		return "📝 Trắc nghiệm"
	case domain.ModeFillBlank:
		return "✍️ Điền từ"
	case domain.ModeSentenceReorder:
		return "🔀 Sắp xếp câu"
	case domain.ModeListening:
		return "🎧 Luyện nghe"
	case domain.ModeFlashcard:
		return "🃏 Thẻ ghi nhớ"
	case domain.ModeWordAssociation:
		return "🔗 Liên kết từ"
	default:
		return string(mode)
	}
}

func scoreLine(score domain.Score) string {
	return fmt.Sprintf("✅ Đúng: %d  ❌ Sai: %d  Σ Tổng: %d", score.Correct, score.Wrong(), score.Total)
}

func deckLine(st deck.State) string {
	return fmt.Sprintf("🂠 Còn lại %d/%d thẻ trong bộ bài", st.Remaining, st.Size)
}

// questionText renders the question body shown above the buttons
func questionText(q *quiz.Question, score domain.Score, st deck.State) string {
	var b strings.Builder
	b.WriteString(modeLabel(q.Mode) + "\n")
	b.WriteString(scoreLine(score) + "\n\n")

	switch q.Mode {
	case domain.ModeMultipleChoice:
		if q.Direction == quiz.WordToMeaning {
			fmt.Fprintf(&b, "Nghĩa của từ này là gì?\n\n<b>%s</b>", escape(q.Prompt))
		} else {
			fmt.Fprintf(&b, "Từ tiếng Anh tương ứng là gì?\n\n<b>%s</b>", escape(q.Prompt))
		}
	case domain.ModeFillBlank:
		fmt.Fprintf(&b, "Điền từ tiếng Anh có nghĩa:\n\n<b>\"%s\"</b>\n\n<code>%s</code>(%d chữ cái)\n\nGõ câu trả lời vào tin nhắn.",
			escape(q.Prompt), q.Hint(), len([]rune(q.Answer)))
	case domain.ModeListening:
		fmt.Fprintf(&b, "🔊 Nghe và chọn từ đúng:\n\n<b>%s</b>", escape(q.Prompt))
	case domain.ModeWordAssociation:
		kind := "đồng nghĩa"
		if q.Association == quiz.Antonym {
			kind = "trái nghĩa"
		}
		fmt.Fprintf(&b, "Từ %s với:\n\n<b>%s</b>", kind, escape(q.Prompt))
	case domain.ModeSentenceReorder:
		fmt.Fprintf(&b, "Sắp xếp các từ thành câu đúng:\n<i>%s</i>\n\n➡️ %s", escape(q.Prompt), escape(q.Assembled()))
	}

	b.WriteString("\n\n" + deckLine(st))
	return b.String()
}

// questionMarkup renders the answer buttons of a question
func questionMarkup(q *quiz.Question) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	switch q.Mode {
	case domain.ModeSentenceReorder:
		row := tele.Row{}
		for i, tok := range q.Tokens {
			if q.Picked(i) {
				continue
			}
			row = append(row, markup.Data(tok, fmt.Sprintf("tok_%s_%d", q.ID, i)))
			if len(row) == 3 {
				rows = append(rows, row)
				row = tele.Row{}
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
		rows = append(rows, markup.Row(markup.Data("↩️ Hoàn tác", "undo_"+q.ID)))
	case domain.ModeFillBlank:
		// answered by text message
	default:
		for i, opt := range q.Options {
			rows = append(rows, markup.Row(markup.Data(opt, fmt.Sprintf("ans_%s_%d", q.ID, i))))
		}
	}

	rows = append(rows, markup.Row(markup.Data("⏭ Câu khác", "next_"+string(q.Mode)), btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// outcomeText renders the verdict and the explanation of an answered question
func outcomeText(o *service.Outcome) string {
	q := o.Question
	var b strings.Builder

	if o.Correct {
		b.WriteString("✅ Chính xác!\n\n")
	} else {
		fmt.Fprintf(&b, "❌ Chưa đúng!\nBạn trả lời: %s\nĐáp án: <b>%s</b>\n\n", escape(o.Given), escape(q.Answer))
	}

	item := q.Item
	fmt.Fprintf(&b, "<b>%s</b> %s", escape(item.Word), escape(item.Phonetic))
	if item.Type != "" {
		fmt.Fprintf(&b, " <i>(%s)</i>", escape(item.Type))
	}
	fmt.Fprintf(&b, "\n%s", escape(item.MeaningVi))
	if item.Example != "" {
		fmt.Fprintf(&b, "\n\n💬 %s\n%s", escape(item.Example), escape(item.ExampleMeaning))
	}

	b.WriteString("\n\n" + scoreLine(o.Score))
	return b.String()
}

func outcomeMarkup(mode domain.QuizMode) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("➡️ Câu tiếp theo", "next_"+string(mode))),
		markup.Row(btnMainMenu),
	)
	return markup
}

// flashcardText renders the current card, front or back
func flashcardText(set *quiz.FlashcardSet, status domain.FlashcardStatus) string {
	card := set.Current()
	var b strings.Builder

	fmt.Fprintf(&b, "🃏 Thẻ %d/%d · %s\n\n", set.Index+1, len(set.Cards), statusLabel(status))
	fmt.Fprintf(&b, "<b>%s</b> %s", escape(card.Word), escape(card.Phonetic))
	if card.Type != "" {
		fmt.Fprintf(&b, " <i>(%s)</i>", escape(card.Type))
	}

	if set.Flipped {
		fmt.Fprintf(&b, "\n\n%s\n%s", escape(card.MeaningVi), escape(card.Meaning))
		if card.Example != "" {
			fmt.Fprintf(&b, "\n\n💬 %s\n%s", escape(card.Example), escape(card.ExampleMeaning))
		}
		if len(card.Synonyms) > 0 {
			fmt.Fprintf(&b, "\n\n≈ %s", escape(strings.Join(card.Synonyms, ", ")))
		}
		if len(card.Antonyms) > 0 {
			fmt.Fprintf(&b, "\n≠ %s", escape(strings.Join(card.Antonyms, ", ")))
		}
	}
	return b.String()
}

func flashcardMarkup(set *quiz.FlashcardSet) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	flip := "👁 Xem nghĩa"
	if set.Flipped {
		flip = "🙈 Ẩn nghĩa"
	}
	markup.Inline(
		markup.Row(markup.Data(flip, "fc_flip")),
		markup.Row(
			markup.Data("✅ Đã biết", "fc_known"),
			markup.Data("📖 Đang học", "fc_learning"),
			markup.Data("🔁 Ôn lại", "fc_review"),
		),
		markup.Row(markup.Data("⬅️", "fc_prev"), markup.Data("➡️", "fc_next")),
		markup.Row(markup.Data("📊 Thống kê", "fc_stats"), btnMainMenu),
	)
	return markup
}

func flashcardStatsText(stats domain.FlashcardStats) string {
	return fmt.Sprintf("📊 Tiến độ thẻ ghi nhớ\n\nĐã đánh dấu: %d\n✅ Đã biết: %d\n📖 Đang học: %d\n🔁 Cần ôn: %d",
		stats.Total, stats.Known, stats.Learning, stats.Review)
}

func statusLabel(status domain.FlashcardStatus) string {
	switch status {
	case domain.StatusKnown:
		return "✅ Đã biết"
	case domain.StatusLearning:
		return "📖 Đang học"
	case domain.StatusReview:
		return "🔁 Cần ôn"
	default:
		return "🆕 Mới"
	}
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape makes dataset text safe for HTML parse mode
func escape(s string) string {
	return htmlEscaper.Replace(s)
}
