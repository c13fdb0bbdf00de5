// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package stdlib

// symbols maps qualified names to their canonical logical header. The
// mapping is known-incomplete: symbols provided by multiple headers
// (size_t, ::printf vs std::printf) get a single preferred entry.
var symbols = map[string]string{
	// Containers.
	"std::array":         "<array>",
	"std::deque":         "<deque>",
	"std::forward_list":  "<forward_list>",
	"std::list":          "<list>",
	"std::map":           "<map>",
	"std::multimap":      "<map>",
	"std::multiset":      "<set>",
	"std::set":           "<set>",
	"std::unordered_map": "<unordered_map>",
	"std::unordered_set": "<unordered_set>",
	"std::vector":        "<vector>",

	// Strings and views.
	"std::basic_string": "<string>",
	"std::char_traits":  "<string>",
	"std::string":       "<string>",
	"std::string_view":  "<string_view>",
	"std::to_string":    "<string>",
	"std::wstring":      "<string>",

	// Utility and memory.
	"std::forward":     "<utility>",
	"std::make_pair":   "<utility>",
	"std::move":        "<utility>",
	"std::pair":        "<utility>",
	"std::swap":        "<utility>",
	"std::make_shared": "<memory>",
	"std::make_unique": "<memory>",
	"std::shared_ptr":  "<memory>",
	"std::unique_ptr":  "<memory>",
	"std::weak_ptr":    "<memory>",
	"std::optional":    "<optional>",
	"std::nullopt":     "<optional>",
	"std::tuple":       "<tuple>",
	"std::get":         "<tuple>",
	"std::variant":     "<variant>",
	"std::visit":       "<variant>",
	"std::function":    "<functional>",
	"std::bind":        "<functional>",
	"std::hash":        "<functional>",

	// Algorithms and numerics.
	"std::accumulate": "<numeric>",
	"std::copy":       "<algorithm>",
	"std::count":      "<algorithm>",
	"std::find":       "<algorithm>",
	"std::max":        "<algorithm>",
	"std::min":        "<algorithm>",
	"std::sort":       "<algorithm>",
	"std::transform":  "<algorithm>",
	"std::abs":        "<cmath>",
	"std::pow":        "<cmath>",
	"std::sqrt":       "<cmath>",

	// Streams.
	"std::cerr":          "<iostream>",
	"std::cin":           "<iostream>",
	"std::cout":          "<iostream>",
	"std::endl":          "<ostream>",
	"std::ifstream":      "<fstream>",
	"std::istream":       "<istream>",
	"std::ofstream":      "<fstream>",
	"std::ostream":       "<ostream>",
	"std::ostringstream": "<sstream>",
	"std::stringstream":  "<sstream>",

	// Concurrency.
	"std::atomic":             "<atomic>",
	"std::condition_variable": "<condition_variable>",
	"std::lock_guard":         "<mutex>",
	"std::mutex":              "<mutex>",
	"std::thread":             "<thread>",
	"std::unique_lock":        "<mutex>",

	// Type support.
	"std::declval":          "<utility>",
	"std::enable_if":        "<type_traits>",
	"std::is_same":          "<type_traits>",
	"std::ptrdiff_t":        "<cstddef>",
	"std::size_t":           "<cstddef>",
	"std::int32_t":          "<cstdint>",
	"std::int64_t":          "<cstdint>",
	"std::uint32_t":         "<cstdint>",
	"std::uint64_t":         "<cstdint>",
	"std::initializer_list": "<initializer_list>",

	// C library names, global namespace.
	"abort":    "<cstdlib>",
	"assert":   "<cassert>",
	"exit":     "<cstdlib>",
	"fclose":   "<cstdio>",
	"fopen":    "<cstdio>",
	"fprintf":  "<cstdio>",
	"free":     "<cstdlib>",
	"malloc":   "<cstdlib>",
	"memcpy":   "<cstring>",
	"memset":   "<cstring>",
	"printf":   "<cstdio>",
	"size_t":   "<cstddef>",
	"snprintf": "<cstdio>",
	"strcmp":   "<cstring>",
	"strlen":   "<cstring>",
}

// headers is the set of known logical standard-library headers,
// including C compatibility spellings that never appear as a canonical
// entry above.
var headers = func() map[string]bool {
	m := make(map[string]bool, len(symbols)+16)
	for _, h := range symbols {
		m[h] = true
	}
	for _, h := range []string{
		"<cctype>", "<cerrno>", "<cfloat>", "<chrono>", "<climits>",
		"<ctime>", "<exception>", "<iomanip>", "<iterator>", "<limits>",
		"<new>", "<random>", "<ratio>", "<regex>", "<stdexcept>",
		"<assert.h>", "<ctype.h>", "<errno.h>", "<limits.h>", "<math.h>",
		"<stddef.h>", "<stdint.h>", "<stdio.h>", "<stdlib.h>",
		"<string.h>", "<time.h>",
	} {
		m[h] = true
	}
	return m
}()
