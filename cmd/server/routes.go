package main

import (
	"sort"
	"strings"

	"samvidha-backend/lib/attendance"
	samvidha "samvidha-backend/services/samvidha"

	"github.com/gofiber/fiber/v2"
)

func setupRoutes(app *fiber.App, service samvidha.Service) {
	h := handlers{service: service}

	app.Get("/", h.Index)
	app.Post("/api/login", h.Login)
	app.Get("/api/attendance", h.Attendance)
	app.Get("/api/streak", h.Streak)
	app.Get("/api/streak.ics", h.StreakCalendar)
	app.Get("/api/report.xlsx", h.SubjectReport)
}

type handlers struct {
	service samvidha.Service
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type subjectRow struct {
	SNo        int     `json:"sno"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

func (h handlers) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "POST /api/login with your portal credentials.",
	})
}

func (h handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	err := c.BodyParser(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body.",
		})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Please enter username and password.",
		})
	}

	token, result := h.service.Login(c.UserContext(), req.Username, req.Password)
	if !result.Overall.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": result.Overall.Message,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"overall": result.Overall,
		"table":   subjectTable(result),
	})
}

func (h handlers) Attendance(c *fiber.Ctx) error {
	result, ok := h.session(c)
	if !ok {
		return c.Redirect("/")
	}
	return c.JSON(fiber.Map{
		"overall": result.Overall,
		"table":   subjectTable(result),
	})
}

func (h handlers) Streak(c *fiber.Ctx) error {
	result, ok := h.session(c)
	if !ok {
		return c.Redirect("/")
	}

	dates := make([]string, 0, len(result.Streak))
	months := map[string]bool{}
	for date := range result.Streak {
		dates = append(dates, date)
		months[date[:7]] = true
	}
	sort.Strings(dates)

	monthList := make([]string, 0, len(months))
	for m := range months {
		monthList = append(monthList, m)
	}
	sort.Strings(monthList)

	initialDate := ""
	if len(dates) > 0 {
		initialDate = dates[len(dates)-1]
	}

	return c.JSON(fiber.Map{
		"daily":        result.Daily,
		"streak":       result.Streak,
		"months":       monthList,
		"initial_date": initialDate,
	})
}

func (h handlers) StreakCalendar(c *fiber.Ctx) error {
	result, ok := h.session(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "No session data. Log in first.",
		})
	}

	cal, err := samvidha.StreakCalendar(result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="streak.ics"`)
	return c.SendString(cal.Serialize())
}

func (h handlers) SubjectReport(c *fiber.Ctx) error {
	result, ok := h.session(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "No session data. Log in first.",
		})
	}

	f, err := samvidha.SubjectReport(result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance.xlsx"`)
	return c.Send(buf.Bytes())
}

func (h handlers) session(c *fiber.Ctx) (attendance.Result, bool) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}
	if token == "" {
		return attendance.Result{}, false
	}
	return h.service.Session(token)
}

// enumerated the way the original table view is rendered
func subjectTable(result attendance.Result) []subjectRow {
	codes := make([]string, 0, len(result.Subjects))
	for code := range result.Subjects {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	table := make([]subjectRow, len(codes))
	for i, code := range codes {
		sub := result.Subjects[code]
		table[i] = subjectRow{
			SNo:        i + 1,
			Code:       code,
			Name:       sub.Name,
			Present:    sub.Present,
			Absent:     sub.Absent,
			Percentage: sub.Percentage,
			Status:     sub.Status,
		}
	}
	return table
}
