package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
)

func TestComputeTotal(t *testing.T) {
	bookA := primitive.NewObjectID()
	bookB := primitive.NewObjectID()
	prices := map[primitive.ObjectID]int64{
		bookA: 60000,
		bookB: 90000,
	}

	tests := []struct {
		name  string
		items []models.OrderItem
		want  int64
	}{
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
		{
			name: "single item",
			items: []models.OrderItem{
				{ProductID: bookB, Quantity: 1},
			},
			want: 90000,
		},
		{
			name: "mixed quantities",
			items: []models.OrderItem{
				{ProductID: bookA, Quantity: 1},
				{ProductID: bookB, Quantity: 2},
			},
			want: 240000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.items, prices))
		})
	}
}
