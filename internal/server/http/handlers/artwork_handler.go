package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/server/http/dto"
)

// ArtworkHandler manages catalog endpoints.
type ArtworkHandler struct {
	facade CatalogFacade
}

// NewArtworkHandler constructs ArtworkHandler.
func NewArtworkHandler(facade CatalogFacade) *ArtworkHandler {
	return &ArtworkHandler{facade: facade}
}

// List handles GET /api/artworks.
func (h *ArtworkHandler) List(c *gin.Context) {
	filter, err := parseArtworkFilter(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	artworks, err := h.facade.Artworks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		response = append(response, dto.FromArtwork(&artworks[i]))
	}
	c.JSON(http.StatusOK, dto.OKList(response, len(response)))
}

// Get handles GET /api/artworks/:id.
func (h *ArtworkHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid artwork id")
		return
	}

	artwork, err := h.facade.Artwork(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromArtwork(artwork)))
}

// ListByCategory handles GET /api/artworks/category/:category.
func (h *ArtworkHandler) ListByCategory(c *gin.Context) {
	filter, err := parseArtworkFilter(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	filter.Category = c.Param("category")

	artworks, err := h.facade.Artworks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		response = append(response, dto.FromArtwork(&artworks[i]))
	}
	c.JSON(http.StatusOK, dto.OKList(response, len(response)))
}

// Create handles POST /api/artworks.
func (h *ArtworkHandler) Create(c *gin.Context) {
	var req dto.ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	artwork, err := h.facade.CreateArtwork(c.Request.Context(), req.ToModel(0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromArtwork(artwork)))
}

// Update handles PUT /api/artworks/:id.
func (h *ArtworkHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid artwork id")
		return
	}

	var req dto.ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	artwork, err := h.facade.UpdateArtwork(c.Request.Context(), req.ToModel(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromArtwork(artwork)))
}

// Delete handles DELETE /api/artworks/:id.
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid artwork id")
		return
	}

	if err := h.facade.DeleteArtwork(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "artwork deleted"})
}

func parseArtworkFilter(c *gin.Context) (model.ArtworkFilter, error) {
	filter := model.ArtworkFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errInvalidQuery("minPrice")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errInvalidQuery("maxPrice")
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errInvalidQuery("featured")
		}
		filter.Featured = &v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return filter, errInvalidQuery("limit")
		}
		filter.Limit = v
	}
	return filter, nil
}

func errInvalidQuery(name string) error {
	return fmt.Errorf("invalid query parameter %s", name)
}
