package model

const ApprovedAccountCollection = "approved_accounts"

// ApprovedAccountDocument marks one external account as an allowed burn
// target. Revoking approval deletes the document.
type ApprovedAccountDocument struct {
	Account string `bson:"_id"`
}
