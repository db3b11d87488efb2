package twin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bobmcallan/finqa/internal/common"
	"github.com/bobmcallan/finqa/internal/models"
)

func (t *Twin) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryPayload
	if !t.decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		t.catalog.Write(w, errInvalidCategoryName)
		return
	}
	if req.Type != models.CategoryIncome && req.Type != models.CategoryExpense {
		t.catalog.Write(w, errInvalidCategoryType)
		return
	}

	category := Category{
		ID:      uuid.NewString(),
		OwnerID: common.ResolveUserID(r.Context()),
		Name:    req.Name,
		Type:    req.Type,
	}
	if err := t.store.CreateCategory(category); err != nil {
		if errors.Is(err, ErrCategoryExists) {
			t.catalog.Write(w, errCategoryAlreadyExists)
			return
		}
		t.logger.Error().Err(err).Msg("Failed to create category")
		writeInternalError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, categoryView(category))
}

func (t *Twin) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	categories := t.store.Categories(common.ResolveUserID(r.Context()))
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryView(c))
	}
	WriteJSON(w, http.StatusOK, out)
}
