// Package style turns optional XML attributes into concrete visual styles.
//
// The package has two layers:
//   - Attribute resolvers (FontSize, Bold, Color, Alignment) read a single
//     optional attribute and always return a usable value. A missing
//     attribute and a malformed one are treated the same way: the caller's
//     default wins and nothing is reported.
//   - Resolvers (Preset, Attributed) combine a role preset with explicit
//     per-element attribute overrides into a Style record.
//
// Precedence is flat: explicit attribute, then role preset, then the global
// defaults returned by Defaults. Styles never inherit from parent elements.
package style
