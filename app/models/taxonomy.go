package models

const (
	CategoryAnnouncement Category = "announcement"
	CategoryAdvice       Category = "advice"
	CategoryPartnership  Category = "partnership"
	CategoryOffer        Category = "offer"
	CategoryRequest      Category = "request"
	CategoryNews         Category = "news"
)

const (
	VisibilityPublic            Visibility = "public"
	VisibilityProfessionalsOnly Visibility = "professionals-only"
	VisibilityRoleSpecific      Visibility = "role-specific"
)

const (
	RoleBuyer        Role = "buyer"
	RoleSeller       Role = "seller"
	RoleSupplier     Role = "supplier"
	RoleConsultant   Role = "consultant"
	RoleInvestor     Role = "investor"
	RoleProfessional Role = "professional"
)

const (
	DateToday DateRange = "today"
	DateWeek  DateRange = "week"
	DateMonth DateRange = "month"
	DateAll   DateRange = "all"
)

const (
	SortRecent   SortKey = "recent"
	SortPopular  SortKey = "popular"
	SortTrending SortKey = "trending"
	SortViews    SortKey = "views"
)

// Any is the wildcard accepted by the enumerated filter fields.
const Any = "all"

var (
	categories   = []Category{CategoryAnnouncement, CategoryAdvice, CategoryPartnership, CategoryOffer, CategoryRequest, CategoryNews}
	visibilities = []Visibility{VisibilityPublic, VisibilityProfessionalsOnly, VisibilityRoleSpecific}
	roles        = []Role{RoleBuyer, RoleSeller, RoleSupplier, RoleConsultant, RoleInvestor, RoleProfessional}
	dateRanges   = []DateRange{DateToday, DateWeek, DateMonth, DateAll}
	sortKeys     = []SortKey{SortRecent, SortPopular, SortTrending, SortViews}
)

// Categories returns the fixed set of post categories.
func Categories() []Category { return append([]Category(nil), categories...) }

// Visibilities returns the fixed set of visibility levels.
func Visibilities() []Visibility { return append([]Visibility(nil), visibilities...) }

// Roles returns the fixed set of author roles.
func Roles() []Role { return append([]Role(nil), roles...) }

// DateRanges returns the supported feed date windows.
func DateRanges() []DateRange { return append([]DateRange(nil), dateRanges...) }

// SortKeys returns the supported ranking keys.
func SortKeys() []SortKey { return append([]SortKey(nil), sortKeys...) }

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool { return contains(categories, c) }

func ValidVisibility(v Visibility) bool { return contains(visibilities, v) }

func ValidRole(r Role) bool { return contains(roles, r) }

func ValidDateRange(d DateRange) bool { return contains(dateRanges, d) }

func ValidSortKey(k SortKey) bool { return contains(sortKeys, k) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
