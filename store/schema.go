package store

import "gorm.io/gorm"

// Table layouts for the gorm backend. Flags are varchar(1) holding "1"/"0" and
// timestamps are TimeFormat text, matching what the collection contract exposes.

type productRow struct {
	ID            string  `gorm:"primaryKey;size:64"`
	NameEn        string  `gorm:"column:name_en;not null"`
	NameKa        string  `gorm:"column:name_ka;not null"`
	DescriptionEn *string `gorm:"column:description_en"`
	DescriptionKa *string `gorm:"column:description_ka"`
	PricePerKg    float64 `gorm:"column:price_per_kg;not null"`
	ImageURL      *string `gorm:"column:image_url"`
	Category      string  `gorm:"column:category;size:32;not null;default:'main'"`
	IsActive      string  `gorm:"column:is_active;size:1;not null;default:'1';index"`
	UserID        string  `gorm:"column:user_id;size:64"`
	CreatedAt     string  `gorm:"column:created_at;size:40;index"`
	UpdatedAt     string  `gorm:"column:updated_at;size:40"`
}

func (productRow) TableName() string { return Products }

type orderRow struct {
	ID              string  `gorm:"primaryKey;size:64"`
	CustomerName    string  `gorm:"column:customer_name;not null"`
	CustomerPhone   string  `gorm:"column:customer_phone;not null"`
	CustomerEmail   *string `gorm:"column:customer_email"`
	CustomerAddress string  `gorm:"column:customer_address;not null"`
	TotalAmount     float64 `gorm:"column:total_amount"`
	Status          string  `gorm:"column:status;size:16;not null;default:'pending';index"`
	Notes           *string `gorm:"column:notes"`
	UserID          string  `gorm:"column:user_id;size:64;index"`
	CreatedAt       string  `gorm:"column:created_at;size:40;index"`
	UpdatedAt       string  `gorm:"column:updated_at;size:40"`
}

func (orderRow) TableName() string { return Orders }

type orderItemRow struct {
	ID         string  `gorm:"primaryKey;size:96"`
	OrderID    string  `gorm:"column:order_id;size:64;not null;index"`
	ProductID  string  `gorm:"column:product_id;size:64;not null"`
	Quantity   int     `gorm:"column:quantity;not null"`
	WeightKg   float64 `gorm:"column:weight_kg"`
	UnitPrice  float64 `gorm:"column:unit_price"`
	TotalPrice float64 `gorm:"column:total_price"`
	UserID     string  `gorm:"column:user_id;size:64"`
	CreatedAt  string  `gorm:"column:created_at;size:40"`
	UpdatedAt  string  `gorm:"column:updated_at;size:40"`
}

func (orderItemRow) TableName() string { return OrderItems }

type menuItemRow struct {
	ID         string `gorm:"primaryKey;size:64"`
	TitleEn    string `gorm:"column:title_en;not null"`
	TitleKa    string `gorm:"column:title_ka;not null"`
	URL        string `gorm:"column:url;not null"`
	OrderIndex int    `gorm:"column:order_index;not null;default:0;index"`
	IsActive   string `gorm:"column:is_active;size:1;not null;default:'1'"`
	UserID     string `gorm:"column:user_id;size:64"`
	CreatedAt  string `gorm:"column:created_at;size:40"`
	UpdatedAt  string `gorm:"column:updated_at;size:40"`
}

func (menuItemRow) TableName() string { return MenuItems }

type pageRow struct {
	ID          string  `gorm:"primaryKey;size:64"`
	TitleEn     string  `gorm:"column:title_en;not null"`
	TitleKa     string  `gorm:"column:title_ka;not null"`
	Slug        string  `gorm:"column:slug;size:191;not null;index"`
	ContentEn   *string `gorm:"column:content_en"`
	ContentKa   *string `gorm:"column:content_ka"`
	IsPublished string  `gorm:"column:is_published;size:1;not null;default:'0'"`
	UserID      string  `gorm:"column:user_id;size:64"`
	CreatedAt   string  `gorm:"column:created_at;size:40;index"`
	UpdatedAt   string  `gorm:"column:updated_at;size:40"`
}

func (pageRow) TableName() string { return Pages }

type contactMessageRow struct {
	ID        string  `gorm:"primaryKey;size:64"`
	Name      string  `gorm:"column:name;not null"`
	Email     string  `gorm:"column:email;not null"`
	Phone     *string `gorm:"column:phone"`
	Message   string  `gorm:"column:message;not null"`
	UserID    string  `gorm:"column:user_id;size:64"`
	CreatedAt string  `gorm:"column:created_at;size:40"`
	UpdatedAt string  `gorm:"column:updated_at;size:40"`
}

func (contactMessageRow) TableName() string { return ContactMessages }

// Migrate creates or updates every collection table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productRow{},
		&orderRow{},
		&orderItemRow{},
		&menuItemRow{},
		&pageRow{},
		&contactMessageRow{},
	)
}
