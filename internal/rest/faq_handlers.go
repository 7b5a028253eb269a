package rest

import (
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/partyplan/faq/internal/faq"
)

func (h *FAQHandler) readRequest(c echo.Context) (ReadRequest, error) {
	var req ReadRequest
	err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req)
	return req, err
}

// Questions handles GET /api/events/:eventId/questions
// @Summary List questions
// @Description Hosts get every question, participants and invite holders get published ones. Published questions come first, then by published_order and draft_order
// @Tags questions
// @Produce json
// @Param eventId path int true "Event ID"
// @Param invite_token query string false "Invite token for guests without an account"
// @Success 200 {array} rest.Question
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/events/{eventId}/questions [get]
func (h *FAQHandler) Questions(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	req, err := h.readRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	questions, err := h.uc.Questions(c.Request().Context(), viewer(c, req.InviteToken), eventID)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, Map(questions, NewQuestion))
}

// CreateQuestion handles POST /api/events/:eventId/questions
// @Summary Ask a question
// @Description Registered users ask as themselves, guests pass invite_token. Only hosts may publish, and published questions need an answer
// @Tags questions
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param question body rest.QuestionCreateRequest true "Question"
// @Success 200 {object} rest.Question
// @Failure 400,401,403,404,429,500 {object} map[string]string
// @Router /api/events/{eventId}/questions [post]
func (h *FAQHandler) CreateQuestion(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	var req QuestionCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	question, err := h.uc.CreateQuestion(c.Request().Context(), viewer(c, ""), eventID, req.ToManager())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewQuestion(*question))
}

// UpdateQuestionOrder handles PUT /api/events/:eventId/questions/order
// @Summary Save question order
// @Description Applies container and order of every listed question in one transaction
// @Tags questions
// @Accept json
// @Param eventId path int true "Event ID"
// @Param order body faq.QuestionOrder true "Question order"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/questions/order [put]
func (h *FAQHandler) UpdateQuestionOrder(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	var order faq.QuestionOrder
	if err := c.Bind(&order); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.uc.UpdateOrder(c.Request().Context(), viewer(c, ""), eventID, order); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateQuestion handles PUT /api/events/:eventId/questions/:questionId
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param questionId path int true "Question ID"
// @Param question body rest.QuestionUpdateRequest true "Changed fields"
// @Success 200 {object} rest.Question
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/questions/{questionId} [put]
func (h *FAQHandler) UpdateQuestion(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}
	questionID, ok := pathID(c, "questionId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid question id")
	}

	var req QuestionUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	question, err := h.uc.UpdateQuestion(c.Request().Context(), viewer(c, ""), eventID, questionID, req.ToManager())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewQuestion(*question))
}

// DeleteQuestion handles DELETE /api/events/:eventId/questions/:questionId
// @Summary Delete a question
// @Tags questions
// @Param eventId path int true "Event ID"
// @Param questionId path int true "Question ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/questions/{questionId} [delete]
func (h *FAQHandler) DeleteQuestion(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}
	questionID, ok := pathID(c, "questionId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid question id")
	}

	if err := h.uc.DeleteQuestion(c.Request().Context(), viewer(c, ""), eventID, questionID); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /api/events/:eventId/question-categories
// @Summary List question categories
// @Tags categories
// @Produce json
// @Param eventId path int true "Event ID"
// @Param invite_token query string false "Invite token for guests without an account"
// @Success 200 {array} rest.Category
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/events/{eventId}/question-categories [get]
func (h *FAQHandler) Categories(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	req, err := h.readRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	categories, err := h.uc.Categories(c.Request().Context(), viewer(c, req.InviteToken), eventID)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// CreateCategory handles POST /api/events/:eventId/question-categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param category body rest.CategoryCreateRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/events/{eventId}/question-categories [post]
func (h *FAQHandler) CreateCategory(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	var req CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), viewer(c, ""), eventID, req.Name)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// UpdateCategoryOrder handles PUT /api/events/:eventId/question-categories/order
// @Summary Save category order
// @Tags categories
// @Accept json
// @Param eventId path int true "Event ID"
// @Param order body faq.CategoryOrder true "Category order"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/question-categories/order [put]
func (h *FAQHandler) UpdateCategoryOrder(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}

	var order faq.CategoryOrder
	if err := c.Bind(&order); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.uc.UpdateCategoryOrder(c.Request().Context(), viewer(c, ""), eventID, order); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateCategory handles PUT /api/events/:eventId/question-categories/:categoryId
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param eventId path int true "Event ID"
// @Param categoryId path int true "Category ID"
// @Param category body rest.CategoryUpdateRequest true "Changed fields"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/question-categories/{categoryId} [put]
func (h *FAQHandler) UpdateCategory(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid category id")
	}

	var req CategoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), viewer(c, ""), eventID, categoryID, req.Name)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/events/:eventId/question-categories/:categoryId
// @Summary Delete a category
// @Description Questions of the category stay published and move to the end of the uncategorized list
// @Tags categories
// @Param eventId path int true "Event ID"
// @Param categoryId path int true "Category ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/events/{eventId}/question-categories/{categoryId} [delete]
func (h *FAQHandler) DeleteCategory(c echo.Context) error {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid event id")
	}
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid category id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), viewer(c, ""), eventID, categoryID); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
