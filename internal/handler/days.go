package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocadeck/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const daysText = "📅 Các ngày bạn đã luyện tập:\n\n"

// handleViewDays shows the first page of practice days
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDaysPage(c, 1)
}

// handlePagination handles "page_N" callbacks
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, "page_"))
	if err != nil || page < 1 {
		h.logger.Warn("Invalid page number", zap.String("data", data))
		return c.Respond()
	}
	return h.showDaysPage(c, page)
}

func (h *Handler) showDaysPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.statsService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err), zap.Int("page", page))
		return alert(c, "Lỗi khi tải dữ liệu")
	}

	if len(days) == 0 {
		return alert(c, "Bạn chưa trả lời câu hỏi nào")
	}

	return h.show(c, daysText, daysMarkup(days, page, totalPages))
}

// daysMarkup lists one page of days with navigation
func daysMarkup(days []domain.Day, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d câu, %d%%)", day.DisplayString(), day.AnswerCount, day.Accuracy())
		rows = append(rows, markup.Row(markup.Data(btnText, "day_"+day.DateString())))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
		}
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)
	return markup
}

// handleDaySelection lists the answers of one day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, "day_")

	h.logger.Info("Handling day selection", zap.String("date", dateStr), zap.Int64("user_id", userID))

	results, err := h.statsService.GetResultsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get results by date", zap.Error(err))
		return alert(c, "Lỗi khi tải dữ liệu")
	}

	if len(results) == 0 {
		return alert(c, "Không có câu trả lời nào trong ngày này")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToDays, btnMainMenu))
	return h.show(c, resultsText(results), markup)
}

func resultsText(results []domain.Result) string {
	var b strings.Builder
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	fmt.Fprintf(&b, "📝 Kết quả trong ngày: %d/%d đúng\n\n", correct, len(results))

	for i, r := range results {
		mark := "❌"
		if r.Correct {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%d. %s <b>%s</b> · %s · %s\n",
			i+1, mark, escape(r.Word), modeLabel(r.Mode), r.AnsweredAt.Format("15:04"))
	}
	return b.String()
}
