package validation

import (
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers the domain enumeration validators with
// gin's binding engine so DTO tags like `binding:"moviegenre"` work.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("moviegenre", validGenre); err != nil {
		return err
	}
	return v.RegisterValidation("movierating", validRating)
}

func validGenre(fl validator.FieldLevel) bool {
	return domain.Genre(fl.Field().String()).IsValid()
}

func validRating(fl validator.FieldLevel) bool {
	return domain.Rating(fl.Field().String()).IsValid()
}
