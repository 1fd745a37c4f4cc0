package repo

import (
	"jobhunter"
	"jobhunter/internal/api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	Db *gorm.DB
}

func NewUserRepository() *UserRepository {
	return &UserRepository{Db: jobhunter.DB}
}

func (slf *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (slf *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("id = ?", id).First(&user).Error
	return user, err
}

func (slf *UserRepository) Create(user *models.User) error {
	return slf.Db.Create(user).Error
}

func (slf *UserRepository) Update(user *models.User) error {
	return slf.Db.Save(user).Error
}

func (slf *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
