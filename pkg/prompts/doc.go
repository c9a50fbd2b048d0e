// Package prompts loads the static template set and renders individual
// prompts by substituting the registered session values.
//
// Templates carry two literal placeholder tokens, {event_name} and
// {full_name}. Substitution is global, literal and case-sensitive; there is no
// escaping mechanism and substituted values are never expanded again.
package prompts
