package dto_test

import (
	"testing"

	"adscape/internal/domains/billboard/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBillboardRequest_ToModel(t *testing.T) {
	price := 500000.0
	legacy := 250000.0

	tests := []struct {
		name      string
		req       dto.CreateBillboardRequest
		wantPrice *float64
	}{
		{name: "price per day", req: dto.CreateBillboardRequest{Location: "Kemang", PricePerDay: &price}, wantPrice: &price},
		{name: "legacy price field", req: dto.CreateBillboardRequest{Location: "Kemang", Price: &legacy}, wantPrice: &legacy},
		{name: "price per day wins", req: dto.CreateBillboardRequest{Location: "Kemang", PricePerDay: &price, Price: &legacy}, wantPrice: &price},
		{name: "no price", req: dto.CreateBillboardRequest{Location: "Kemang"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billboard := tt.req.ToModel("guest")

			assert.True(t, billboard.Availability)
			assert.Equal(t, tt.wantPrice, billboard.PricePerDay)
			assert.Nil(t, billboard.ContactPhone)
			assert.Equal(t, "guest", billboard.CreatedBy)
		})
	}
}

func TestCreateBillboardRequest_ToModelTrimsContacts(t *testing.T) {
	req := dto.CreateBillboardRequest{Location: "  Kemang ", ContactPhone: " +62 21 555 0101 ", ContactEmail: " "}

	billboard := req.ToModel("guest")

	assert.Equal(t, "Kemang", billboard.Location)
	require.NotNil(t, billboard.ContactPhone)
	assert.Equal(t, "+62 21 555 0101", *billboard.ContactPhone)
	assert.Nil(t, billboard.ContactEmail)
}

func TestUpdateBillboardRequest_Normalize(t *testing.T) {
	legacy := 100.0

	req := dto.UpdateBillboardRequest{Location: " Kemang ", Price: &legacy}
	req.Normalize()

	assert.Equal(t, "Kemang", req.Location)
	assert.Equal(t, &legacy, req.PricePerDay)
	assert.Nil(t, req.Price)
}
