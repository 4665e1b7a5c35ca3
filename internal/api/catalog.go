package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/service"
)

func (h *Handler) CreateMOU(e echo.Context) error {
	var req model.MOU
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	mou, err := h.catalog.CreateMOU(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, mou)
}

func (h *Handler) ListMOUs(e echo.Context) error {
	mous, err := h.catalog.ListMOUs(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, mous)
}

func (h *Handler) GetMOU(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	mou, err := h.catalog.GetMOU(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, mou)
}

func (h *Handler) AddGalleryImage(e echo.Context) error {
	var req model.GalleryImageInput
	vErr := h.decodeRequest(e, &req)
	if vErr != nil && vErr.Code != service.ErrorCodeValidationFailed {
		return h.transportError(e, vErr)
	}

	image, closeFn, err := formUpload(e, "image")
	if err != nil {
		return h.transportError(e, err)
	}
	defer closeFn()

	if vErr != nil {
		return h.transportError(e, vErr.Merge(service.CheckImage(image)))
	}

	img, err := h.catalog.AddGalleryImage(e.Request().Context(), &req, image)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, h.galleryResponse(e, img))
}

func (h *Handler) ListGalleryImages(e echo.Context) error {
	imgs, err := h.catalog.ListGalleryImages(e.Request().Context(), e.QueryParam("category"))
	if err != nil {
		return h.transportError(e, err)
	}

	res := make([]*model.GalleryImage, 0, len(imgs))
	for _, img := range imgs {
		res = append(res, h.galleryResponse(e, img))
	}
	return e.JSON(http.StatusOK, res)
}

func (h *Handler) GetGalleryImage(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	img, err := h.catalog.GetGalleryImage(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, h.galleryResponse(e, img))
}

// galleryResponse swaps the stored path for a URL built from the incoming request.
func (h *Handler) galleryResponse(e echo.Context, img *model.GalleryImage) *model.GalleryImage {
	out := *img
	out.Image = h.urls.Resolve(e.Request(), img.Image)
	return &out
}

func (h *Handler) CreateProject(e echo.Context) error {
	var req model.Project
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	p, err := h.catalog.CreateProject(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, p)
}

func (h *Handler) ListProjects(e echo.Context) error {
	projects, err := h.catalog.ListProjects(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	p, err := h.catalog.GetProject(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, p)
}

func (h *Handler) CreateCommunityItem(e echo.Context) error {
	var req model.CommunityItem
	if err := h.decodeRequest(e, &req); err != nil {
		return h.transportError(e, err)
	}

	item, err := h.catalog.CreateCommunityItem(e.Request().Context(), &req)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusCreated, item)
}

func (h *Handler) ListCommunityItems(e echo.Context) error {
	items, err := h.catalog.ListCommunityItems(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, items)
}

func (h *Handler) GetCommunityItem(e echo.Context) error {
	id, pErr := parseID(e)
	if pErr != nil {
		return h.transportError(e, pErr)
	}

	item, err := h.catalog.GetCommunityItem(e.Request().Context(), id)
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, item)
}
