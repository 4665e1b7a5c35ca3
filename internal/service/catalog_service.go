package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/media"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

// CatalogService serves the published site content. Gallery records come back with
// Image set to the stored media path; turning it into a URL is up to the caller.
type CatalogService struct {
	storage media.Storage

	mous      repository.MOURepository
	gallery   repository.GalleryRepository
	projects  repository.ShowcaseRepository
	community repository.ShowcaseRepository
}

func NewCatalogService(storage media.Storage) *CatalogService {
	return &CatalogService{storage: storage}
}

func (c *CatalogService) CreateMOU(ctx context.Context, mou *model.MOU) (*model.MOU, error) {
	row := &repository.MOU{
		Organization: mou.Organization,
		Title:        mou.Title,
		Description:  mou.Description,
		SignedOn:     mou.SignedOn,
	}
	if err := c.mous.Create(ctx, row); err != nil {
		logger.FromContext(ctx).Error("failed to create mou", zap.String("organization", mou.Organization), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create mou")
	}
	return toModelMOU(row), nil
}

func (c *CatalogService) GetMOU(ctx context.Context, id int64) (*model.MOU, error) {
	row, err := c.mous.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "mou", id)
	}
	return toModelMOU(row), nil
}

func (c *CatalogService) ListMOUs(ctx context.Context) ([]*model.MOU, error) {
	rows, err := c.mous.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "mous")
	}

	res := make([]*model.MOU, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelMOU(row))
	}
	return res, nil
}

// CheckImage sniffs the upload and rewinds it. Problems with the file are
// reported as an "image" field error.
func CheckImage(image *Upload) *Error {
	if image == nil || image.Content == nil {
		return NewFieldError("image", msgNoFile)
	}
	if err := media.ValidateImage(image.Content, image.Size); err != nil {
		return NewFieldError("image", err.Error())
	}
	if _, err := image.Content.Seek(0, io.SeekStart); err != nil {
		return NewError(ErrorCodeUnspecified, "failed to store image")
	}
	return nil
}

func (c *CatalogService) AddGalleryImage(ctx context.Context, in *model.GalleryImageInput, image *Upload) (*model.GalleryImage, error) {
	l := logger.FromContext(ctx)

	if vErr := CheckImage(image); vErr != nil {
		if image != nil {
			l.Warn("rejected gallery image", zap.String("file_name", image.Name), zap.String("code", string(vErr.Code)))
		}
		return nil, vErr
	}

	stored, err := c.storage.Save(ctx, media.GalleryDir, image.Name, image.Content)
	if errors.Is(err, media.ErrFileNameMissing) {
		return nil, NewFieldError("image", err.Error())
	}
	if err != nil {
		l.Error("failed to store gallery image", zap.String("file_name", image.Name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to store image")
	}

	row := &repository.GalleryImage{
		Title:    in.Title,
		Category: in.Category,
		Image:    stored,
	}
	if err = c.gallery.Create(ctx, row); err != nil {
		l.Error("failed to create gallery image", zap.String("title", in.Title), zap.Error(err))
		if dErr := c.storage.Delete(ctx, stored); dErr != nil {
			l.Warn("failed to remove orphaned image", zap.String("path", stored), zap.Error(dErr))
		}
		return nil, NewError(ErrorCodeUnspecified, "failed to create gallery image")
	}

	return toModelGalleryImage(row), nil
}

func (c *CatalogService) GetGalleryImage(ctx context.Context, id int64) (*model.GalleryImage, error) {
	row, err := c.gallery.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "gallery image", id)
	}
	return toModelGalleryImage(row), nil
}

func (c *CatalogService) ListGalleryImages(ctx context.Context, category string) ([]*model.GalleryImage, error) {
	rows, err := c.gallery.List(ctx, category)
	if err != nil {
		return nil, listError(ctx, err, "gallery images")
	}

	res := make([]*model.GalleryImage, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelGalleryImage(row))
	}
	return res, nil
}

func (c *CatalogService) CreateProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	row := &repository.ShowcaseItem{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Link:        p.Link,
	}
	if err := c.projects.Create(ctx, row); err != nil {
		logger.FromContext(ctx).Error("failed to create project", zap.String("title", p.Title), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create project")
	}
	return toModelProject(row), nil
}

func (c *CatalogService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	row, err := c.projects.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "project", id)
	}
	return toModelProject(row), nil
}

func (c *CatalogService) ListProjects(ctx context.Context) ([]*model.Project, error) {
	rows, err := c.projects.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "projects")
	}

	res := make([]*model.Project, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelProject(row))
	}
	return res, nil
}

func (c *CatalogService) CreateCommunityItem(ctx context.Context, item *model.CommunityItem) (*model.CommunityItem, error) {
	row := &repository.ShowcaseItem{
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Link:        item.Link,
	}
	if err := c.community.Create(ctx, row); err != nil {
		logger.FromContext(ctx).Error("failed to create community item", zap.String("title", item.Title), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create community item")
	}
	return toModelCommunityItem(row), nil
}

func (c *CatalogService) GetCommunityItem(ctx context.Context, id int64) (*model.CommunityItem, error) {
	row, err := c.community.Get(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, "community item", id)
	}
	return toModelCommunityItem(row), nil
}

func (c *CatalogService) ListCommunityItems(ctx context.Context) ([]*model.CommunityItem, error) {
	rows, err := c.community.List(ctx)
	if err != nil {
		return nil, listError(ctx, err, "community items")
	}

	res := make([]*model.CommunityItem, 0, len(rows))
	for _, row := range rows {
		res = append(res, toModelCommunityItem(row))
	}
	return res, nil
}

func (c *CatalogService) WithMOURepo(r repository.MOURepository) *CatalogService {
	c.mous = r
	return c
}

func (c *CatalogService) WithGalleryRepo(r repository.GalleryRepository) *CatalogService {
	c.gallery = r
	return c
}

func (c *CatalogService) WithProjectRepo(r repository.ShowcaseRepository) *CatalogService {
	c.projects = r
	return c
}

func (c *CatalogService) WithCommunityRepo(r repository.ShowcaseRepository) *CatalogService {
	c.community = r
	return c
}

func toModelMOU(row *repository.MOU) *model.MOU {
	return &model.MOU{
		ID:           row.ID,
		Organization: row.Organization,
		Title:        row.Title,
		Description:  row.Description,
		SignedOn:     row.SignedOn,
		CreatedAt:    row.CreatedAt,
	}
}

func toModelGalleryImage(row *repository.GalleryImage) *model.GalleryImage {
	return &model.GalleryImage{
		ID:       row.ID,
		Title:    row.Title,
		Category: row.Category,
		Image:    row.Image,
	}
}

func toModelProject(row *repository.ShowcaseItem) *model.Project {
	return &model.Project{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Link:        row.Link,
		CreatedAt:   row.CreatedAt,
	}
}

func toModelCommunityItem(row *repository.ShowcaseItem) *model.CommunityItem {
	return &model.CommunityItem{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    row.Category,
		Link:        row.Link,
		CreatedAt:   row.CreatedAt,
	}
}
