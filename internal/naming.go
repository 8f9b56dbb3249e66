package internal

import (
	"fmt"
	"strings"
)

// ShortTermProfileName derives the section that holds the temporary
// credentials produced by r.
//
//	session-token: <profile>-<suffix>
//	assume-role:   <profile>_<arn tail>-<session name>_<suffix>
func (r Request) ShortTermProfileName(cfg Config) string {
	switch r.Action {
	case ActionAssumeRole:
		return fmt.Sprintf("%s_%s-%s_%s", cfg.ProfileName, roleARNTail(r.RoleARN), r.RoleSessionName, cfg.ShortTermSuffix)
	default:
		return fmt.Sprintf("%s-%s", cfg.ProfileName, cfg.ShortTermSuffix)
	}
}

// roleARNTail drops the arn:partition:service:region prefix and joins the
// account and resource parts with dashes. Empty segments are kept so the
// region slot is always counted.
func roleARNTail(roleARN string) string {
	segments := strings.Split(strings.ReplaceAll(roleARN, "/", ":"), ":")
	if len(segments) <= 4 {
		return ""
	}
	return strings.Join(segments[4:], "-")
}
