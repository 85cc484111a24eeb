package i18n

import "piwkina-shop/models"

var header = map[models.Language]Dictionary{
	models.English: {
		"brand":          "Piwkina.ge",
		"nav.home":       "Home",
		"nav.products":   "Products",
		"nav.about":      "About",
		"nav.contact":    "Contact",
		"languageToggle": "ქარ",
		"admin":          "Admin Dashboard",
		"logout":         "Sign Out",
	},
	models.Georgian: {
		"brand":          "Piwkina.ge",
		"nav.home":       "მთავარი",
		"nav.products":   "პროდუქტები",
		"nav.about":      "ჩვენ შესახებ",
		"nav.contact":    "კონტაქტი",
		"languageToggle": "ENG",
		"admin":          "ადმინ პანელი",
		"logout":         "გასვლა",
	},
}

var footer = map[models.Language]Dictionary{
	models.English: {
		"company":     "Piwkina.ge",
		"description": "Traditional Georgian roasted pork delivery service",
		"contact":     "Contact Information",
		"phone":       "+995 555 123 456",
		"email":       "info@piwkina.ge",
		"address":     "Tbilisi, Georgia",
		"quickLinks":  "Quick Links",
		"followUs":    "Follow Us",
		"rights":      "© 2024 Piwkina.ge. All rights reserved.",
	},
	models.Georgian: {
		"company":     "Piwkina.ge",
		"description": "ტრადიციული ქართული შემწვარი გოჭის მიტანის სერვისი",
		"contact":     "საკონტაქტო ინფორმაცია",
		"phone":       "+995 555 123 456",
		"email":       "info@piwkina.ge",
		"address":     "თბილისი, საქართველო",
		"quickLinks":  "სწრაფი ბმულები",
		"followUs":    "გამოგვყევით",
		"rights":      "© 2024 Piwkina.ge. ყველა უფლება დაცულია.",
	},
}

var home = map[models.Language]Dictionary{
	models.English: {
		"hero.title":              "Traditional Georgian Roasted Pork",
		"hero.subtitle":           "Authentic flavors delivered fresh to your door",
		"hero.cta":                "Order Now",
		"hero.viewProducts":       "View All Products",
		"features.title":          "Why Choose Piwkina.ge?",
		"features.quality.title":  "Premium Quality",
		"features.quality.desc":   "Only the finest ingredients and traditional recipes",
		"features.fresh.title":    "Fresh Daily",
		"features.fresh.desc":     "Prepared fresh every day with authentic Georgian methods",
		"features.delivery.title": "Fast Delivery",
		"features.delivery.desc":  "Quick and reliable delivery throughout Tbilisi",
		"products.title":          "Featured Products",
		"products.pricePerKg":     "per kg",
		"products.addToCart":      "Add to Cart",
	},
	models.Georgian: {
		"hero.title":              "ტრადიციული ქართული შემწვარი გოჭი",
		"hero.subtitle":           "ავთენტური გემო მიტანილი ახლად თქვენს კართან",
		"hero.cta":                "შეკვეთა ახლავე",
		"hero.viewProducts":       "ყველა პროდუქტის ნახვა",
		"features.title":          "რატომ აირჩიოთ Piwkina.ge?",
		"features.quality.title":  "პრემიუმ ხარისხი",
		"features.quality.desc":   "მხოლოდ საუკეთესო ინგრედიენტები და ტრადიციული რეცეპტები",
		"features.fresh.title":    "ყოველდღე ახალი",
		"features.fresh.desc":     "ყოველდღე ახლად მომზადებული ავთენტური ქართული მეთოდებით",
		"features.delivery.title": "სწრაფი მიტანა",
		"features.delivery.desc":  "სწრაფი და საიმედო მიტანა მთელ თბილისში",
		"products.title":          "რჩეული პროდუქტები",
		"products.pricePerKg":     "კგ-ზე",
		"products.addToCart":      "კალათაში დამატება",
	},
}

var products = map[models.Language]Dictionary{
	models.English: {
		"title":          "Our Products",
		"subtitle":       "Fresh, traditional Georgian roasted pork delivered to your door",
		"search":         "Search products...",
		"category":       "Category",
		"allCategories":  "All Categories",
		"pricePerKg":     "per kg",
		"addToCart":      "Add to Cart",
		"quantity":       "Quantity (kg)",
		"noProducts":     "No products found",
		"noProductsDesc": "Try adjusting your search or filter criteria",
	},
	models.Georgian: {
		"title":          "ჩვენი პროდუქტები",
		"subtitle":       "ახალი, ტრადიციული ქართული შემწვარი გოჭი მიტანილი თქვენს კართან",
		"search":         "პროდუქტების ძიება...",
		"category":       "კატეგორია",
		"allCategories":  "ყველა კატეგორია",
		"pricePerKg":     "კგ-ზე",
		"addToCart":      "კალათაში დამატება",
		"quantity":       "რაოდენობა (კგ)",
		"noProducts":     "პროდუქტები ვერ მოიძებნა",
		"noProductsDesc": "სცადეთ ძიების ან ფილტრის კრიტერიუმების შეცვლა",
	},
}

var about = map[models.Language]Dictionary{
	models.English: {
		"title":                  "About Piwkina.ge",
		"subtitle":               "Preserving Georgian culinary traditions since 2020",
		"story.title":            "Our Story",
		"story.content":          "Piwkina.ge was born from a passion for authentic Georgian cuisine and a desire to share the rich flavors of traditional roasted pork with families across Tbilisi. Our journey began in 2020 when our founder, inspired by generations-old family recipes, decided to bring the authentic taste of Georgian \"შემწვარი გოჭი\" directly to your doorstep.",
		"values.title":           "Our Values",
		"values.quality.title":   "Quality First",
		"values.quality.desc":    "We source only the finest ingredients and maintain strict quality standards in every step of our process.",
		"values.methods.title":   "Traditional Methods",
		"values.methods.desc":    "Our recipes and cooking techniques have been passed down through generations of Georgian families.",
		"values.community.title": "Community Focus",
		"values.community.desc":  "We're committed to serving our local community and supporting Georgian culinary traditions.",
		"values.fresh.title":     "Fresh Daily",
		"values.fresh.desc":      "Every order is prepared fresh daily using traditional Georgian cooking methods and spices.",
		"mission.title":          "Our Mission",
		"mission.content":        "To preserve and share the authentic flavors of Georgian cuisine by delivering the highest quality traditional roasted pork directly to families throughout Tbilisi.",
	},
	models.Georgian: {
		"title":                  "Piwkina.ge-ს შესახებ",
		"subtitle":               "2020 წლიდან ვინარჩუნებთ ქართულ კულინარიულ ტრადიციებს",
		"story.title":            "ჩვენი ისტორია",
		"story.content":          "Piwkina.ge დაიბადა ავთენტური ქართული სამზარეულოს ვნებით და ტრადიციული შემწვარი გოჭის მდიდარი გემოების თბილისის ოჯახებთან გაზიარების სურვილით.",
		"values.title":           "ჩვენი ღირებულებები",
		"values.quality.title":   "ხარისხი პირველ ადგილზე",
		"values.quality.desc":    "ჩვენ ვირჩევთ მხოლოდ საუკეთესო ინგრედიენტებს და ვინარჩუნებთ მკაცრ ხარისხის სტანდარტებს ჩვენი პროცესის ყოველ ეტაპზე.",
		"values.methods.title":   "ტრადიციული მეთოდები",
		"values.methods.desc":    "ჩვენი რეცეპტები და მომზადების ტექნიკა ქართული ოჯახების თაობებით არის გადმოცემული.",
		"values.community.title": "საზოგადოებაზე ფოკუსი",
		"values.community.desc":  "ჩვენ ვართ ერთგულები ჩვენი ადგილობრივი საზოგადოების მომსახურებისა და ქართული კულინარიული ტრადიციების მხარდაჭერისადმი.",
		"values.fresh.title":     "ყოველდღე ახალი",
		"values.fresh.desc":      "ყოველი შეკვეთა ყოველდღე ახლად მზადდება ტრადიციული ქართული მომზადების მეთოდებითა და სანელებლებით.",
		"mission.title":          "ჩვენი მისია",
		"mission.content":        "ქართული სამზარეულოს ავთენტური გემოების შენარჩუნება და გაზიარება უმაღლესი ხარისხის ტრადიციული შემწვარი გოჭის პირდაპირ თბილისის ოჯახებთან მიტანით.",
	},
}

var contact = map[models.Language]Dictionary{
	models.English: {
		"title":        "Contact Us",
		"subtitle":     "Get in touch with us for orders, questions, or feedback",
		"contactInfo":  "Contact Information",
		"phone":        "Phone",
		"email":        "Email",
		"address":      "Address",
		"hours":        "Business Hours",
		"hoursText":    "Monday - Sunday: 9:00 AM - 10:00 PM",
		"form.title":   "Send us a Message",
		"form.name":    "Your Name",
		"form.email":   "Your Email",
		"form.phone":   "Your Phone",
		"form.message": "Your Message",
		"form.send":    "Send Message",
		"info.phone":   "+995 555 123 456",
		"info.email":   "info@piwkina.ge",
		"info.address": "Tbilisi, Georgia",
	},
	models.Georgian: {
		"title":        "დაგვიკავშირდით",
		"subtitle":     "დაგვიკავშირდით შეკვეთებისთვის, კითხვებისთვის ან უკუკავშირისთვის",
		"contactInfo":  "საკონტაქტო ინფორმაცია",
		"phone":        "ტელეფონი",
		"email":        "ელ-ფოსტა",
		"address":      "მისამართი",
		"hours":        "სამუშაო საათები",
		"hoursText":    "ორშაბათი - კვირა: 9:00 - 22:00",
		"form.title":   "გამოგვიგზავნეთ შეტყობინება",
		"form.name":    "თქვენი სახელი",
		"form.email":   "თქვენი ელ-ფოსტა",
		"form.phone":   "თქვენი ტელეფონი",
		"form.message": "თქვენი შეტყობინება",
		"form.send":    "შეტყობინების გაგზავნა",
		"info.phone":   "+995 555 123 456",
		"info.email":   "info@piwkina.ge",
		"info.address": "თბილისი, საქართველო",
	},
}

var cart = map[models.Language]Dictionary{
	models.English: {
		"title":            "Shopping Cart",
		"emptyCart":        "Your cart is empty",
		"emptyCartDesc":    "Add some delicious products to get started",
		"continueShopping": "Continue Shopping",
		"item":             "Item",
		"quantity":         "Quantity",
		"price":            "Price",
		"total":            "Total",
		"subtotal":         "Subtotal",
		"delivery":         "Delivery",
		"free":             "Free",
		"grandTotal":       "Grand Total",
		"checkout":         "Checkout",
		"customerInfo":     "Customer Information",
		"name":             "Full Name",
		"phone":            "Phone Number",
		"email":            "Email (optional)",
		"address":          "Delivery Address",
		"notes":            "Order Notes (optional)",
		"placeOrder":       "Place Order",
		"processing":       "Processing...",
		"remove":           "Remove",
	},
	models.Georgian: {
		"title":            "სავაჭრო კალათა",
		"emptyCart":        "თქვენი კალათა ცარიელია",
		"emptyCartDesc":    "დაამატეთ გემრიელი პროდუქტები დასაწყებად",
		"continueShopping": "შოპინგის გაგრძელება",
		"item":             "პროდუქტი",
		"quantity":         "რაოდენობა",
		"price":            "ფასი",
		"total":            "ჯამი",
		"subtotal":         "ქვეჯამი",
		"delivery":         "მიტანა",
		"free":             "უფასო",
		"grandTotal":       "საერთო ჯამი",
		"checkout":         "შეკვეთა",
		"customerInfo":     "მყიდველის ინფორმაცია",
		"name":             "სრული სახელი",
		"phone":            "ტელეფონის ნომერი",
		"email":            "ელ-ფოსტა (არასავალდებულო)",
		"address":          "მიტანის მისამართი",
		"notes":            "შეკვეთის შენიშვნები (არასავალდებულო)",
		"placeOrder":       "შეკვეთის გაფორმება",
		"processing":       "მუშავდება...",
		"remove":           "წაშლა",
	},
}

var categories = map[models.Language]Dictionary{
	models.English: {
		"all":      "All Categories",
		"main":     "Main Products",
		"special":  "Special Items",
		"seasonal": "Seasonal",
	},
	models.Georgian: {
		"all":      "ყველა კატეგორია",
		"main":     "მთავარი პროდუქტები",
		"special":  "სპეციალური",
		"seasonal": "სეზონური",
	},
}

var shell = map[models.Language]Dictionary{
	models.English: {
		"loading":      "Loading...",
		"signInPrompt": "Please sign in to access the Piwkina.ge e-commerce platform",
		"signIn":       "Sign In",
	},
	models.Georgian: {
		"loading":      "იტვირთება...",
		"signInPrompt": "გთხოვთ შეხვიდეთ Piwkina.ge-ს პლატფორმაზე წვდომისთვის",
		"signIn":       "შესვლა",
	},
}
