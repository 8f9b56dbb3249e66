package internal

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	ini "gopkg.in/ini.v1"
)

const (
	PermissionRWX = 0o700
	PermissionRW  = 0o600
)

// Fields is a copy of one section's key/value pairs.
type Fields map[string]string

// CredentialStore is an in-memory view of a shared credentials file.
// Duplicate section headers are kept as separate sections so that callers
// can detect ambiguous profiles instead of silently merging them.
type CredentialStore struct {
	path string
	file *ini.File
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		AllowNonUniqueSections:  true,
		// Values are kept verbatim so untouched profiles are written back as read.
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}
}

// LoadCredentialStore reads and parses the credentials file at path.
func LoadCredentialStore(path string) (*CredentialStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrStoreNotFound, "%s", path),
				"Create it with: aws configure --profile <name>",
			)
		}
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), ErrStoreIO)
	}

	s, err := ParseCredentialStore(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	s.path = path
	return s, nil
}

// ParseCredentialStore parses credentials from memory. The result has no
// backing path, so only PersistTo can write it.
func ParseCredentialStore(data []byte) (*CredentialStore, error) {
	f, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing credentials"), ErrStoreParse)
	}
	return &CredentialStore{file: f}, nil
}

// Path returns the file the store was loaded from.
func (s *CredentialStore) Path() string {
	return s.path
}

// Sections returns copies of every section named name, in file order.
// A positive limit stops the scan after that many matches.
func (s *CredentialStore) Sections(name string, limit int) []Fields {
	secs, err := s.file.SectionsByName(name)
	if err != nil {
		return nil
	}
	if limit > 0 && len(secs) > limit {
		secs = secs[:limit]
	}

	out := make([]Fields, 0, len(secs))
	for _, sec := range secs {
		out = append(out, Fields(sec.KeysHash()))
	}
	return out
}

// Section returns the first section named name.
func (s *CredentialStore) Section(name string) (Fields, bool) {
	secs := s.Sections(name, 1)
	if len(secs) == 0 {
		return nil, false
	}
	return secs[0], true
}

// SectionNames lists profile names in file order without duplicates.
func (s *CredentialStore) SectionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range s.file.SectionStrings() {
		if name == ini.DefaultSection || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// SetField writes key=value into section, creating the section when it is
// missing. If the name is duplicated the first section is updated. Only the
// section's own keys are touched: ini's Key lookup would fall back to the
// "parent" of a dotted name such as acme.admin.
func (s *CredentialStore) SetField(section, key, value string) error {
	if _, err := s.file.Section(section).NewKey(key, value); err != nil {
		return errors.Wrapf(err, "setting %s in [%s]", key, section)
	}
	return nil
}

// DeleteSection removes every section named name.
func (s *CredentialStore) DeleteSection(name string) {
	s.file.DeleteSection(name)
}

// Persist writes the store back to the file it was loaded from.
func (s *CredentialStore) Persist() error {
	if s.path == "" {
		return errors.Mark(errors.New("credentials store has no backing file"), ErrStoreIO)
	}
	return s.PersistTo(s.path)
}

// PersistTo serialises the whole store and atomically replaces path with it.
// Nothing is written unless serialisation succeeds.
func (s *CredentialStore) PersistTo(path string) error {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return errors.Mark(errors.Wrap(err, "serialising credentials"), ErrStoreIO)
	}

	if err := os.MkdirAll(filepath.Dir(path), PermissionRWX); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating %s", filepath.Dir(path)), ErrStoreIO)
	}
	if err := writeFileAtomic(path, buf.Bytes(), PermissionRW); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", path), ErrStoreIO)
	}
	return nil
}

// SetShortTermProfile merges stp into section name. Credentials and the
// expiration are always overwritten; assumed role fields are only written
// when set so that a value from an earlier assume-role run survives.
func (s *CredentialStore) SetShortTermProfile(name string, stp *ShortTermProfile) error {
	fields := make([][2]string, 0, 6)
	if stp.AssumedRoleARN != "" {
		fields = append(fields, [2]string{AssumedRoleARNField, stp.AssumedRoleARN})
	}
	if stp.AssumedRoleID != "" {
		fields = append(fields, [2]string{AssumedRoleIDField, stp.AssumedRoleID})
	}
	fields = append(fields,
		[2]string{ExpirationField, FormatExpiration(stp.Expiration)},
		[2]string{AccessKeyField, stp.AccessKey},
		[2]string{SecretKeyField, stp.SecretKey},
		[2]string{SessionTokenField, stp.SessionToken},
	)

	for _, kv := range fields {
		if err := s.SetField(name, kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}
