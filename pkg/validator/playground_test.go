package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validjson/pkg/errtree"
	"github.com/dmitrymomot/validjson/pkg/validator"
)

type taggedFood struct {
	Name   string `json:"name" validate:"min=3"`
	Rating int    `json:"rating" validate:"gte=1,lte=10"`
}

type taggedMenu struct {
	Title string            `json:"title" validate:"required"`
	Foods []taggedFood      `json:"foods" validate:"min=1,dive"`
	Tags  []string          `json:"tags" validate:"dive,min=2"`
	Chef  *taggedFood       `json:"chef,omitempty" validate:"omitempty"`
	Notes map[string]string `json:"notes" validate:"dive,max=5"`
	Skip  string            `json:"-"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid struct", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Struct(&taggedFood{Name: "Pizza", Rating: 10}))
	})

	t.Run("non struct values are valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Struct(42))
		assert.NoError(t, validator.Struct([]string{"x"}))
		assert.NoError(t, validator.Struct((*taggedFood)(nil)))
	})

	t.Run("field errors use json names", func(t *testing.T) {
		t.Parallel()
		err := validator.Struct(&taggedFood{Name: "tt", Rating: 11})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		report := errtree.Flatten(errtree.FromError(err))

		assert.Equal(t, errtree.Report{
			"name":   []string{"must be at least 3 characters long"},
			"rating": []string{"must be less than or equal to 10"},
		}, report)
	})

	t.Run("slice and map errors become nested objects", func(t *testing.T) {
		t.Parallel()
		menu := taggedMenu{
			Title: "",
			Foods: []taggedFood{{Name: "Pizza", Rating: 5}, {Name: "x", Rating: 5}},
			Tags:  []string{"ok", "a"},
			Notes: map[string]string{"short": "fine", "long": "too long"},
		}

		report := errtree.Flatten(errtree.FromError(validator.Struct(menu)))

		assert.Equal(t, errtree.Report{
			"title": []string{"field is required"},
			"foods": errtree.Report{
				"1": errtree.Report{"name": []string{"must be at least 3 characters long"}},
			},
			"tags": errtree.Report{
				"1": []string{"must be at least 2 characters long"},
			},
			"notes": errtree.Report{
				"long": []string{"must be at most 5 characters long"},
			},
		}, report)
	})

	t.Run("slice length error", func(t *testing.T) {
		t.Parallel()
		report := errtree.Flatten(errtree.FromError(validator.Struct(taggedMenu{Title: "Lunch"})))

		assert.Equal(t, errtree.Report{"foods": []string{"must have at least 1 items"}}, report)
	})
}
