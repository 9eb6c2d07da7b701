package ui

// arabic maps the UI's English strings to Arabic. Missing entries fall back
// to English so new strings degrade readably.
var arabic = map[string]string{
	"Welcome to PartMart": "مرحبا بكم في بارت مارت",
	"Signed in as":        "مسجل الدخول باسم",
	"Browsing as guest; your cart is kept on this device.": "تتصفح كضيف؛ تُحفظ سلتك على هذا الجهاز.",
	"Parts":                        "قطع الغيار",
	"Search":                       "بحث",
	"No parts match your search.":  "لا توجد قطع تطابق بحثك.",
	"Cart":                         "السلة",
	"Your cart is empty.":          "سلتك فارغة.",
	"Total":                        "الإجمالي",
	"Wishlist":                     "المفضلة",
	"Nothing saved yet.":           "لا شيء محفوظ بعد.",
	"Sign in":                      "تسجيل الدخول",
	"Email":                        "البريد الإلكتروني",
	"Password":                     "كلمة المرور",
	"Account":                      "الحساب",
	"Name":                         "الاسم",
	"Role":                         "الدور",
	"Phone":                        "الهاتف",
	"Checkout":                     "الدفع",
	"Orders":                       "الطلبات",
	"Vendor dashboard":             "لوحة البائع",
	"Admin":                        "الإدارة",
	"Register":                     "إنشاء حساب",
	"Sign in to see your account.": "سجل الدخول لعرض حسابك.",
	"This area is under construction.": "هذا القسم قيد الإنشاء.",
	"Guest":                        "ضيف",
}

// tr translates a UI string into the active locale.
func (m *Model) tr(s string) string {
	if m.locale != "ar" {
		return s
	}
	if t, ok := arabic[s]; ok {
		return t
	}
	return s
}
