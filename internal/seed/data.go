package seed

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/timsachnhabe/bookstore-api/internal/models"
)

// samplePassword is the shared credential for every seeded account.
// Sample data only.
const samplePassword = "123456"

// firstOrderDiscount is the fixed discount applied to the first seeded
// order's invoice.
const firstOrderDiscount int64 = 10000

// Documents get their ObjectIDs assigned here, before insertion, so later
// stages can reference earlier ones without reading the store back.

func sampleCatalogs() []models.Catalog {
	return []models.Catalog{
		{ID: primitive.NewObjectID(), GenreID: "FIC", Name: "Tiểu thuyết"},
		{ID: primitive.NewObjectID(), GenreID: "EDU", Name: "Giáo dục"},
		{ID: primitive.NewObjectID(), GenreID: "KID", Name: "Thiếu nhi"},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:          primitive.NewObjectID(),
			ISBN:        9786041234567,
			Title:       "Dế Mèn Phiêu Lưu Ký",
			Publisher:   "NXB Kim Đồng",
			Author:      "Tô Hoài",
			PageCount:   200,
			Weight:      "250g",
			Price:       60000,
			Description: "Tác phẩm kinh điển thiếu nhi Việt Nam",
			ImageURL:    "/images/de-men-phieu-luu-ky.jpg",
			Catalog:     "KID",
			Stock:       100,
		},
		{
			ID:          primitive.NewObjectID(),
			ISBN:        9786049876543,
			Title:       "Tuổi Trẻ Đáng Giá Bao Nhiêu",
			Publisher:   "NXB Trẻ",
			Author:      "Rosie Nguyễn",
			PageCount:   280,
			Weight:      "300g",
			Price:       90000,
			Description: "Sách kỹ năng sống dành cho người trẻ",
			ImageURL:    "/images/tuoi-tre-dang-gia-bao-nhieu.jpg",
			Catalog:     "EDU",
			Stock:       80,
		},
		{
			ID:          primitive.NewObjectID(),
			ISBN:        9786049999999,
			Title:       "Nhà Giả Kim",
			Publisher:   "NXB Hội Nhà Văn",
			Author:      "Paulo Coelho",
			PageCount:   220,
			Weight:      "260g",
			Price:       85000,
			Description: "Tiểu thuyết truyền cảm hứng nổi tiếng thế giới",
			ImageURL:    "/images/nha-gia-kim.jpg",
			Catalog:     "FIC",
			Stock:       60,
		},
	}
}

func sampleUsers(passwordHash string) []models.User {
	return []models.User{
		{
			ID:           primitive.NewObjectID(),
			FullName:     "Admin Tim Sach Nha Be",
			Email:        "admin@timsachnhabe.com",
			PasswordHash: passwordHash,
			PhoneNumber:  "0900000001",
			Address:      "Nhà Bè, TP. Hồ Chí Minh",
			Role:         models.RoleAdmin,
		},
		{
			ID:           primitive.NewObjectID(),
			FullName:     "Người Dùng 1",
			Email:        "user1@timsachnhabe.com",
			PasswordHash: passwordHash,
			PhoneNumber:  "0900000002",
			Address:      "Quận 1, TP. Hồ Chí Minh",
			Role:         models.RoleUser,
		},
		{
			ID:           primitive.NewObjectID(),
			FullName:     "Người Dùng 2",
			Email:        "user2@timsachnhabe.com",
			PasswordHash: passwordHash,
			PhoneNumber:  "0900000003",
			Address:      "Quận 7, TP. Hồ Chí Minh",
			Role:         models.RoleUser,
		},
	}
}

// sampleOrders builds the fixed order plan: one pending COD order for the
// base user and one completed VNPAY order for the second. Totals are the
// exact sum of unit price × quantity over the line items.
func sampleOrders(products []models.Product, baseUser, secondUser models.User, now time.Time) []models.Order {
	return []models.Order{
		{
			ID:     primitive.NewObjectID(),
			UserID: baseUser.ID,
			Items: []models.OrderItem{
				{ProductID: products[0].ID, Quantity: 1},
				{ProductID: products[1].ID, Quantity: 2},
			},
			TotalAmount:     products[0].Price*1 + products[1].Price*2,
			OrderDate:       now,
			PaymentMethod:   models.PaymentCOD,
			ShippingAddress: baseUser.Address,
			Status:          models.OrderStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:     primitive.NewObjectID(),
			UserID: secondUser.ID,
			Items: []models.OrderItem{
				{ProductID: products[2].ID, Quantity: 1},
			},
			TotalAmount:     products[2].Price,
			OrderDate:       now,
			PaymentMethod:   models.PaymentVNPay,
			ShippingAddress: secondUser.Address,
			Status:          models.OrderStatusCompleted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

func sampleCoupons() []models.Coupon {
	return []models.Coupon{
		{
			ID:          primitive.NewObjectID(),
			PromoID:     "WELCOME10",
			PromoName:   "Giảm 10% cho đơn đầu tiên",
			PromoType:   models.CouponPercent,
			Amount:      "10",
			StartDate:   "2025-01-01",
			EndDate:     "2025-12-31",
			Description: "Áp dụng cho tất cả khách hàng mới",
		},
		{
			ID:          primitive.NewObjectID(),
			PromoID:     "FREESHIP",
			PromoName:   "Miễn phí vận chuyển",
			PromoType:   models.CouponShipping,
			Amount:      "0",
			StartDate:   "2025-01-01",
			EndDate:     "2025-06-30",
			Description: "Miễn phí vận chuyển cho đơn từ 200k",
		},
	}
}

// sampleReviews references seeded products by ISBN, the external identifier.
func sampleReviews(products []models.Product) []models.Review {
	return []models.Review{
		{
			ID:      primitive.NewObjectID(),
			Rating:  5,
			Comment: "Sách rất hay, đáng đọc",
			BookID:  products[0].ISBN,
		},
		{
			ID:      primitive.NewObjectID(),
			Rating:  4,
			Comment: "Nội dung hữu ích cho người trẻ",
			BookID:  products[1].ISBN,
		},
	}
}
