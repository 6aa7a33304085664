package forms

// OrderForm validates the checkout customer and shipping details.
type OrderForm struct {
	FirstName       string `form:"first_name" validate:"required"`
	MiddleName      string `form:"middle_name"`
	LastName        string `form:"last_name" validate:"required"`
	StreetAddress   string `form:"street_address" validate:"required"`
	City            string `form:"city" validate:"required"`
	StateOrProvince string `form:"state_or_province" validate:"required"`
	EmailAddress    string `form:"email_address" validate:"required,email"`
	PhoneNumber     string `form:"phone_number" validate:"required"`
	MpesaNumber     string `form:"mpesa_number" validate:"required"`
	ZipCode         string `form:"zip_code" validate:"required"`
}

var orderMessages = map[string]string{
	"first_name.required":        "First Name is required!",
	"last_name.required":         "Last Name is required!",
	"street_address.required":    "Street Address is required!",
	"city.required":              "City is required!",
	"state_or_province.required": "State or Province is required!",
	"email_address.required":     "Email Address is required!",
	"email_address.email":        "Invalid Email Address!",
	"phone_number.required":      "Phone Number is required!",
	"mpesa_number.required":      "Mpesa Number is required!",
	"zip_code.required":          "Zip Code is required!",
}

func (f *OrderForm) Validate() map[string][]string {
	return collect(validate.Struct(f), orderMessages)
}
