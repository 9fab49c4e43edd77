// Package domain contains the core business entities of the finance
// tracker: users, financial entries, their lifecycle enums, and the
// validation logic that guards every persistence operation. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
