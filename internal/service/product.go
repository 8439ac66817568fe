package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"toko-backend/internal/apperr"
	"toko-backend/internal/model"
	"toko-backend/internal/repository"
	"toko-backend/internal/storage"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ctx context.Context, name string, price float64, image *ImageUpload) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, id uint, name string, price float64, image *ImageUpload) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
	store       storage.ObjectStore
}

func NewProductService(productRepo repository.ProductRepository, store storage.ObjectStore) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
		store:       store,
	}
}

func (s *productServiceImpl) Create(ctx context.Context, name string, price float64, image *ImageUpload) (*model.Product, error) {
	// Upload runs first: a rejected or failed upload must leave no product row.
	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:  name,
		Price: price,
		Image: imageURL,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productServiceImpl) Update(ctx context.Context, id uint, name string, price float64, image *ImageUpload) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	if imageURL != "" {
		product.Image = imageURL
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uint) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productServiceImpl) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed", apperr.ErrUpload)
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(image.Filename))
	url, err := s.store.Upload(ctx, name, image.ContentType, image.Reader)
	if err != nil {
		return "", err
	}
	return url, nil
}
