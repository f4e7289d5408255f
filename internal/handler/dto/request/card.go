package request

type RegisterCardRequest struct {
	Barcode    string `json:"barcode" binding:"required,max=512"`
	Registrant string `json:"registrant" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=32"`
}
