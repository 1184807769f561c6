package main

import (
	"github.com/dmitrymomot/validjson/handler"
	"github.com/dmitrymomot/validjson/pkg/validator"
)

// Food is a rated food choice.
type Food struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

func (f Food) Validate() error {
	return validator.Object().
		Field("name", validator.MinLen(f.Name, 3)).
		Field("rating", validator.RangeNum(f.Rating, 1, 10)).
		Err()
}

// TaggedFood is Food validated through struct tags.
type TaggedFood struct {
	Name   string `json:"name" validate:"min=3"`
	Rating int    `json:"rating" validate:"gte=1,lte=10"`
}

// Menu groups foods under a title.
type Menu struct {
	Title string   `json:"title"`
	Foods []Food   `json:"foods"`
	Tags  []string `json:"tags,omitempty"`
}

func (m Menu) Validate() error {
	return validator.Object().
		Field("title", validator.Required(m.Title), validator.MaxLen(m.Title, 80)).
		Nested("foods", validator.Each(m.Foods,
			validator.MinLenSlice(m.Foods, 1),
			validator.MaxLenSlice(m.Foods, 20),
		)).
		Nested("tags", validator.Items(m.Tags, func(_ int, tag string) error {
			return validator.Apply(validator.MinLen(tag, 2))
		}, validator.UniqueSlice(m.Tags))).
		Err()
}

func createFood(ctx handler.Context, food Food) handler.Response {
	return handler.JSON(food)
}

func createTaggedFood(ctx handler.Context, food TaggedFood) handler.Response {
	return handler.JSON(food)
}

func createMenu(ctx handler.Context, menu Menu) handler.Response {
	return handler.JSON(menu)
}
