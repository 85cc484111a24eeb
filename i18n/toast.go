package i18n

import "piwkina-shop/models"

// Toast is the only way failures and confirmations reach the shopper.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"`
}

const Destructive = "destructive"

type toastText struct{ title, description string }

var toasts = map[string]map[models.Language]toastText{
	"missingInfo": {
		models.English:  {"Missing Information", "Please fill in all required fields"},
		models.Georgian: {"ნაკლული ინფორმაცია", "გთხოვთ შეავსოთ ყველა სავალდებულო ველი"},
	},
	"emptyCart": {
		models.English:  {"Empty Cart", "Please add items to your cart first"},
		models.Georgian: {"ცარიელი კალათა", "გთხოვთ ჯერ დაამატოთ პროდუქტები კალათაში"},
	},
	"orderSuccess": {
		models.English:  {"Order placed successfully!", "We will contact you shortly to confirm your order"},
		models.Georgian: {"შეკვეთა წარმატებით გაფორმდა!", "ჩვენ მალე დაგიკავშირდებით შეკვეთის დასადასტურებლად"},
	},
	"orderError": {
		models.English:  {"Failed to place order. Please try again.", ""},
		models.Georgian: {"შეკვეთის გაფორმება ვერ მოხერხდა. გთხოვთ სცადოთ ხელახლა.", ""},
	},
	"orderInFlight": {
		models.English:  {"Processing...", "Your order is already being placed"},
		models.Georgian: {"მუშავდება...", "თქვენი შეკვეთა უკვე ფორმდება"},
	},
	"addedToCart": {
		models.English:  {"Added to cart", ""},
		models.Georgian: {"დაემატა კალათაში", ""},
	},
	"messageSuccess": {
		models.English:  {"Message sent successfully!", "We will get back to you as soon as possible"},
		models.Georgian: {"შეტყობინება წარმატებით გაიგზავნა!", "ჩვენ მალე დაგიკავშირდებით"},
	},
	"messageError": {
		models.English:  {"Failed to send message. Please try again.", ""},
		models.Georgian: {"შეტყობინების გაგზავნა ვერ მოხერხდა. გთხოვთ სცადოთ ხელახლა.", ""},
	},
}

// ToastFor builds a localized toast. Unknown keys produce a bare title.
func ToastFor(lang models.Language, key string, destructive bool) Toast {
	t := Toast{Title: key}
	if byLang, ok := toasts[key]; ok {
		text, ok := byLang[lang]
		if !ok {
			text = byLang[models.English]
		}
		t.Title, t.Description = text.title, text.description
	}
	if destructive {
		t.Variant = Destructive
	}
	return t
}

// AdminToast builds the English-only toasts of the back office.
func AdminToast(title, description string, destructive bool) Toast {
	t := Toast{Title: title, Description: description}
	if destructive {
		t.Variant = Destructive
	}
	return t
}
