package conf

// setting keys
const (
	SiteTitle          = "site_title"
	Announcement       = "announcement"
	ExternalPort       = "external_port"
	AllowRegister      = "allow_register"
	DefaultQuotaLimit  = "default_quota_limit"
	AuditRetentionDays = "audit_retention_days"
	ShareDefaultExpiry = "share_default_expiry"
)

// setting flags
const (
	FlagPublic = iota
	FlagPrivate
	FlagReadonly
	FlagDeprecated
)

// service names
const (
	ServiceIdentity = "identity"
	ServiceFiles    = "files"
	ServiceFolders  = "folders"
	ServiceQuota    = "quota"
	ServiceAudit    = "audit"
	ServiceSharing  = "sharing"
)

var AllServices = []string{
	ServiceIdentity, ServiceFiles, ServiceFolders,
	ServiceQuota, ServiceAudit, ServiceSharing,
}
