package links

import "strings"

// StdPrefix marks names from the C++ standard library.
const StdPrefix = "std::"

const cppreferenceURL = "https://en.cppreference.com/w/cpp/"

// stdTypeURLs maps standard library names to their cppreference pages,
// relative to cppreferenceURL.
var stdTypeURLs = map[string]string{
	"std::any":                "utility/any",
	"std::array":              "container/array",
	"std::atomic":             "atomic/atomic",
	"std::basic_string":       "string/basic_string",
	"std::bitset":             "utility/bitset",
	"std::byte":               "types/byte",
	"std::chrono::duration":   "chrono/duration",
	"std::chrono::time_point": "chrono/time_point",
	"std::complex":            "numeric/complex",
	"std::condition_variable": "thread/condition_variable",
	"std::deque":              "container/deque",
	"std::error_code":         "error/error_code",
	"std::exception":          "error/exception",
	"std::expected":           "utility/expected",
	"std::filesystem::path":   "filesystem/path",
	"std::forward_list":       "container/forward_list",
	"std::function":           "utility/functional/function",
	"std::future":             "thread/future",
	"std::initializer_list":   "utility/initializer_list",
	"std::int16_t":            "types/integer",
	"std::int32_t":            "types/integer",
	"std::int64_t":            "types/integer",
	"std::int8_t":             "types/integer",
	"std::istream":            "io/basic_istream",
	"std::list":               "container/list",
	"std::map":                "container/map",
	"std::multimap":           "container/multimap",
	"std::multiset":           "container/multiset",
	"std::mutex":              "thread/mutex",
	"std::optional":           "utility/optional",
	"std::ostream":            "io/basic_ostream",
	"std::pair":               "utility/pair",
	"std::priority_queue":     "container/priority_queue",
	"std::promise":            "thread/promise",
	"std::ptrdiff_t":          "types/ptrdiff_t",
	"std::queue":              "container/queue",
	"std::set":                "container/set",
	"std::shared_mutex":       "thread/shared_mutex",
	"std::shared_ptr":         "memory/shared_ptr",
	"std::size_t":             "types/size_t",
	"std::span":               "container/span",
	"std::stack":              "container/stack",
	"std::string":             "string/basic_string",
	"std::string_view":        "string/basic_string_view",
	"std::thread":             "thread/thread",
	"std::tuple":              "utility/tuple",
	"std::u16string":          "string/basic_string",
	"std::u32string":          "string/basic_string",
	"std::uint16_t":           "types/integer",
	"std::uint32_t":           "types/integer",
	"std::uint64_t":           "types/integer",
	"std::uint8_t":            "types/integer",
	"std::unique_ptr":         "memory/unique_ptr",
	"std::unordered_map":      "container/unordered_map",
	"std::unordered_multimap": "container/unordered_multimap",
	"std::unordered_multiset": "container/unordered_multiset",
	"std::unordered_set":      "container/unordered_set",
	"std::variant":            "utility/variant",
	"std::vector":             "container/vector",
	"std::weak_ptr":           "memory/weak_ptr",
	"std::wstring":            "string/basic_string",
}

// ExternalURL returns the documentation URL of a well-known external type
// given its bare name.
func ExternalURL(bareName string) (string, bool) {
	if !strings.HasPrefix(bareName, StdPrefix) {
		return "", false
	}
	path, ok := stdTypeURLs[bareName]
	if !ok {
		return "", false
	}
	return cppreferenceURL + path, true
}

// BareTypeName strips qualifiers, template arguments, pointers, references,
// function signatures and array extents from a type name, so that
// "const Type<int> **" becomes "Type".
func BareTypeName(typeName string) string {
	s := typeName
	for _, q := range []string{"const ", "volatile ", "restrict ", "struct ", "union "} {
		s = strings.Replace(s, q, "", 1)
	}
	for _, stop := range []string{"<", "&", "*", "(", "["} {
		if i := strings.Index(s, stop); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimRight(s, " \t\n\r")
}
