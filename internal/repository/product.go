package repository

import (
	"context"
	"errors"

	"github.com/suritel/worklog-api/internal/constant"
	"github.com/suritel/worklog-api/internal/model"
	"gorm.io/gorm"
)

type ProductRepository struct {
	*baseRepository
}

const (
	msgProductNotFound  = "제품을 찾을 수 없습니다."
	msgProductDuplicate = "이미 동일한 제품 유형/제품명이 존재합니다."
)

func (pr ProductRepository) FindAll(ctx context.Context, tx *gorm.DB, productType string) ([]model.Product, error) {
	pr.logger.Debugf("Find products with type: %q", productType)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Product{})
	if productType != "" {
		query = query.Where("product_type = ?", productType)
	}

	var products []model.Product
	if err := query.Order("product_type ASC, product_name ASC").Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

// FindGroupedByType returns products keyed by product_type, names sorted within each group.
func (pr ProductRepository) FindGroupedByType(ctx context.Context, tx *gorm.DB) (map[string][]model.Product, error) {
	products, err := pr.FindAll(ctx, tx, "")
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Product)
	for _, p := range products {
		grouped[p.ProductType] = append(grouped[p.ProductType], p)
	}

	return grouped, nil
}

func (pr ProductRepository) GetByID(ctx context.Context, tx *gorm.DB, productID uint) (*model.Product, error) {
	pr.logger.Debugf("Get product by id: %d", productID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var product model.Product
	if err := db.WithContext(ctx).Where("product_id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFound(msgProductNotFound)
		}
		return nil, err
	}

	return &product, nil
}

func (pr *ProductRepository) Create(ctx context.Context, tx *gorm.DB, product *model.Product) (*model.Product, error) {
	pr.logger.Debugf("Create product %s/%s", product.ProductType, product.ProductName)

	db := pr.getDB(tx)

	err := pr.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var count int64
		if err := tx.WithContext(ctx).Model(&model.Product{}).
			Where("product_type = ? AND product_name = ?", product.ProductType, product.ProductName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewConflict(msgProductDuplicate)
		}

		return tx.WithContext(ctx).Create(product).Error
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (pr *ProductRepository) Update(ctx context.Context, tx *gorm.DB, productID uint, changes map[string]any) (*model.Product, error) {
	pr.logger.Debugf("Update product id: %d", productID)

	current, err := pr.GetByID(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	db := pr.getDB(tx)

	err = pr.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		newType := current.ProductType
		if v, ok := changes["product_type"].(string); ok {
			newType = v
		}
		newName := current.ProductName
		if v, ok := changes["product_name"].(string); ok {
			newName = v
		}

		var count int64
		if err := tx.WithContext(ctx).Model(&model.Product{}).
			Where("product_type = ? AND product_name = ? AND product_id <> ?", newType, newName, productID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewConflict(msgProductDuplicate)
		}

		if len(changes) == 0 {
			return nil
		}

		return tx.WithContext(ctx).Model(&model.Product{}).
			Where("product_id = ?", productID).
			Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}

	return pr.GetByID(ctx, nil, productID)
}

func (pr *ProductRepository) Delete(ctx context.Context, tx *gorm.DB, productID uint) error {
	pr.logger.Debugf("Delete product id: %d", productID)

	if _, err := pr.GetByID(ctx, tx, productID); err != nil {
		return err
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.Product{}).Error
}
