// Package ui defines the rendering and input capabilities the workflows
// talk to, plus the navigation controller. Workflows never touch the
// terminal directly; they set named fields and visibility flags, and read
// named inputs, which keeps them independently testable.
package ui

// Field names a rendered text/visibility property or a form input.
type Field string

// Screen and section containers. Exactly one of each group is visible.
const (
	FieldScreenLogin     Field = "screen-login"
	FieldScreenRegister  Field = "screen-register"
	FieldScreenDashboard Field = "screen-dashboard"

	FieldSectionHome        Field = "section-home"
	FieldSectionStatement   Field = "section-statement"
	FieldSectionPixTransfer Field = "section-pix-transfer"
	FieldSectionPixKeys     Field = "section-pix-keys"
)

// Inline notices, scoped to the form/section that produced them.
const (
	FieldLoginError      Field = "login-error"
	FieldRegisterError   Field = "register-error"
	FieldRegisterSuccess Field = "register-success"
	FieldPixError        Field = "pix-error"
	FieldPixSuccess      Field = "pix-success"
	FieldPixKeyError     Field = "pix-key-error"
	FieldPixKeySuccess   Field = "pix-key-success"
)

// Dashboard and list outputs.
const (
	FieldUserName           Field = "user-name"
	FieldBalance            Field = "account-balance"
	FieldAccountNumber      Field = "account-number"
	FieldAgency             Field = "account-agency"
	FieldRecentTransactions Field = "recent-transactions"
	FieldStatementList      Field = "statement-list"
	FieldPixKeysList        Field = "pix-keys-list"
)

// Receiver lookup panel.
const (
	FieldReceiverInfo     Field = "receiver-info"
	FieldReceiverName     Field = "receiver-name"
	FieldReceiverDocument Field = "receiver-document"
	FieldReceiverBank     Field = "receiver-bank"
	FieldReceiverAgency   Field = "receiver-agency"
	FieldReceiverAccount  Field = "receiver-account"
)

// PIX key form controls.
const (
	FieldKeyValueGroup  Field = "key-value-group"
	FieldKeyInfoMessage Field = "key-info-message"
	FieldKeyValueHint   Field = "key-value-hint"
)

// Form inputs, read through the InputReader capability.
const (
	InputLoginEmail       Field = "login-email"
	InputLoginPassword    Field = "login-password"
	InputRegisterName     Field = "register-name"
	InputRegisterDocument Field = "register-cpf"
	InputRegisterEmail    Field = "register-email"
	InputRegisterPassword Field = "register-password"
	InputRegisterPin      Field = "register-pin"
	InputPixKey           Field = "pix-key"
	InputPixAmount        Field = "pix-amount"
	InputPixPin           Field = "pix-pin"
	InputPixDescription   Field = "pix-description"
	InputKeyType          Field = "key-type"
	InputKeyValue         Field = "key-value"
)

// Form groups inputs that reset together.
type Form string

const (
	FormLogin    Form = "login-form"
	FormRegister Form = "register-form"
	FormPix      Form = "pix-form"
	FormPixKey   Form = "pix-key-form"
)

// FormFields lists the inputs belonging to each form.
var FormFields = map[Form][]Field{
	FormLogin:    {InputLoginEmail, InputLoginPassword},
	FormRegister: {InputRegisterName, InputRegisterDocument, InputRegisterEmail, InputRegisterPassword, InputRegisterPin},
	FormPix:      {InputPixKey, InputPixAmount, InputPixPin, InputPixDescription},
	FormPixKey:   {InputKeyType, InputKeyValue},
}
