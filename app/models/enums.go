package models

// PolicyType defines the kinds of insurance policies a user can track.
type PolicyType string

const (
	PolicyLife    PolicyType = "life"
	PolicyVehicle PolicyType = "vehicle"
	PolicyHome    PolicyType = "home"
	PolicyHealth  PolicyType = "health"
	PolicyBond    PolicyType = "bond"
	PolicyOther   PolicyType = "other"
)

// PremiumFrequency defines how often a policy premium is paid.
type PremiumFrequency string

const (
	PremiumMonthly PremiumFrequency = "monthly"
	PremiumAnnual  PremiumFrequency = "annual"
	PremiumOnceOff PremiumFrequency = "once-off"
)

// PolicyStatus defines the lifecycle status of a policy relative to its expiry date.
type PolicyStatus string

const (
	PolicyActive       PolicyStatus = "active"
	PolicyExpiringSoon PolicyStatus = "expiring-soon"
	PolicyExpired      PolicyStatus = "expired"
)

// InvestmentType defines the kinds of investment vehicles a user can track.
type InvestmentType string

const (
	InvestmentRetirement InvestmentType = "retirement"
	InvestmentUnitTrust  InvestmentType = "unit-trust"
	InvestmentStocks     InvestmentType = "stocks"
	InvestmentSavings    InvestmentType = "savings"
	InvestmentOther      InvestmentType = "other"
)

// InvestmentStatus defines the performance classification of an investment.
type InvestmentStatus string

const (
	InvestmentGrowing   InvestmentStatus = "growing"
	InvestmentStable    InvestmentStatus = "stable"
	InvestmentDeclining InvestmentStatus = "declining"
)

// AlertType defines the kinds of reminders the system tracks.
type AlertType string

const (
	AlertRenewal     AlertType = "renewal"
	AlertPayment     AlertType = "payment"
	AlertExpiry      AlertType = "expiry"
	AlertReview      AlertType = "review"
	AlertOpportunity AlertType = "opportunity"
)

// AlertPriority defines the urgency tier of an alert.
type AlertPriority string

const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

// RelatedItemType identifies which entity kind an alert references.
type RelatedItemType string

const (
	RelatedPolicy     RelatedItemType = "policy"
	RelatedInvestment RelatedItemType = "investment"
)

// DocumentCategory defines the filing category of an uploaded document.
type DocumentCategory string

const (
	DocCategoryID         DocumentCategory = "ID"
	DocCategoryLicense    DocumentCategory = "License"
	DocCategoryPolicy     DocumentCategory = "Policy"
	DocCategoryInvestment DocumentCategory = "Investment"
	DocCategoryOther      DocumentCategory = "Other"
)
