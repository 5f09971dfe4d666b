package models

// FeeType defines the categories a fee structure can belong to.
type FeeType string

const (
	FeeTuition       FeeType = "TUITION"
	FeeAccommodation FeeType = "ACCOMMODATION"
	FeeLibrary       FeeType = "LIBRARY"
	FeeLaboratory    FeeType = "LABORATORY"
	FeeRegistration  FeeType = "REGISTRATION"
	FeeExamination   FeeType = "EXAMINATION"
	FeeSchoolTrip    FeeType = "SCHOOL_TRIP"
	FeeSports        FeeType = "SPORTS"
	FeeMedical       FeeType = "MEDICAL"
	FeeOther         FeeType = "OTHER"
)

// Semester defines the billing periods within an academic year.
type Semester string

const (
	Semester1 Semester = "SEMESTER_1"
	Semester2 Semester = "SEMESTER_2"
	Semester3 Semester = "SEMESTER_3"
)

// FeeStatus defines the payment status of a student fee assignment.
// OVERDUE and WAIVED are administrative states; the payment flow only
// ever derives PENDING, PARTIAL and PAID.
type FeeStatus string

const (
	FeePending FeeStatus = "PENDING"
	FeePartial FeeStatus = "PARTIAL"
	FeePaid    FeeStatus = "PAID"
	FeeOverdue FeeStatus = "OVERDUE"
	FeeWaived  FeeStatus = "WAIVED"
)

// PaymentMethod defines how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodCard         PaymentMethod = "CARD"
)

// ExpenseStatus defines the approval workflow status of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpenseRejected ExpenseStatus = "REJECTED"
	ExpensePaid     ExpenseStatus = "PAID"
)

// StaffRole defines the possible roles for a staff member.
type StaffRole string

const (
	RoleLecturer StaffRole = "LECTURER"
	RoleSecurity StaffRole = "SECURITY"
	RoleCleaner  StaffRole = "CLEANER"
	RoleAdmin    StaffRole = "ADMIN"
	RoleOther    StaffRole = "OTHER"
)

// StaffStatus defines the employment status of a staff member.
type StaffStatus string

const (
	StaffActive    StaffStatus = "ACTIVE"
	StaffSuspended StaffStatus = "SUSPENDED"
	StaffExited    StaffStatus = "EXITED"
)

// StudentStatus defines the enrollment status of a student.
type StudentStatus string

const (
	StudentActive   StudentStatus = "ACTIVE"
	StudentDeferred StudentStatus = "DEFERRED"
	StudentDropped  StudentStatus = "DROPPED"
)
