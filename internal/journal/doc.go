// Package journal parses action-log journals into timestamped entries and
// resolves the screenshot files each entry references.
package journal
