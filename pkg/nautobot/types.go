package nautobot

// StatusRef is the status object the service attaches to records, e.g.
// {"value": "active", "label": "Active"}. Status values are defined by
// administrators on the remote side, so the set is open, not a closed enum.
type StatusRef struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// ObjectRef is a compact reference to a related object (role, tenant, VRF,
// site). Depending on the endpoint the service renders these either as
// related objects (id/url/name) or as choice fields (value/label); both
// shapes decode into the same reference.
type ObjectRef struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url,omitempty"`
	Name    string `json:"name,omitempty"`
	Display string `json:"display,omitempty"`
	Value   string `json:"value,omitempty"`
	Label   string `json:"label,omitempty"`
}

// String returns the most specific human-readable name the reference carries.
func (r *ObjectRef) String() string {
	if r == nil {
		return ""
	}
	for _, s := range []string{r.Label, r.Display, r.Name, r.Value, r.ID} {
		if s != "" {
			return s
		}
	}
	return ""
}

// IPAddress is one IP address record. ID is assigned by the service and
// immutable; Address is always CIDR host notation ("10.0.0.1/24").
type IPAddress struct {
	ID          string     `json:"id"`
	URL         string     `json:"url,omitempty"`
	Display     string     `json:"display,omitempty"`
	Address     string     `json:"address"`
	Status      StatusRef  `json:"status"`
	Role        *ObjectRef `json:"role,omitempty"`
	Tenant      *ObjectRef `json:"tenant,omitempty"`
	VRF         *ObjectRef `json:"vrf,omitempty"`
	DNSName     string     `json:"dns_name,omitempty"`
	Description string     `json:"description,omitempty"`
	Created     string     `json:"created,omitempty"`
	LastUpdated string     `json:"last_updated,omitempty"`
}

// Prefix is one network prefix record. Prefix is always CIDR network
// notation ("10.0.0.0/8") with the network bits consistent with the mask.
type Prefix struct {
	ID          string     `json:"id"`
	URL         string     `json:"url,omitempty"`
	Display     string     `json:"display,omitempty"`
	Prefix      string     `json:"prefix"`
	Status      StatusRef  `json:"status"`
	Site        *ObjectRef `json:"site,omitempty"`
	Role        *ObjectRef `json:"role,omitempty"`
	Tenant      *ObjectRef `json:"tenant,omitempty"`
	VRF         *ObjectRef `json:"vrf,omitempty"`
	IsPool      bool       `json:"is_pool,omitempty"`
	Description string     `json:"description,omitempty"`
	Created     string     `json:"created,omitempty"`
	LastUpdated string     `json:"last_updated,omitempty"`
}

// Page is one bounded window of a list result. Count is the server-reported
// total for the filtered set at the time of the fetch; HasMore tells whether
// records exist beyond the returned window. A Page and its records belong
// exclusively to the call that produced them.
type Page[T any] struct {
	Records []T
	Count   int
	HasMore bool
}
