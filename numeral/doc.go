// Package numeral decomposes non-negative integers into fingerspelling
// sign sequences over a sparse number→sign mapping.
//
// 🚀 How decomposition works
//
//	A direct hit in the mapping short-circuits everything: Decompose(23)
//	with a 23 entry is just ["23"]. Otherwise the number is processed by
//	magnitude bands in descending order — hundred-thousands,
//	ten-thousands, thousands, hundreds, tens — and finally units:
//
//	 1. If the exact band value (e.g. 3000 for 3421) is mapped, consume it.
//	 2. Else, if the band unit (e.g. bare 1000) is mapped, repeat it
//	    remainder/unit times: 3000 with only a 1000 entry emits
//	    ["1000","1000","1000"].
//	 3. The final remainder falls back to a direct lookup, then to its
//	    individual decimal digits.
//
//	Signs are the decimal strings of the consumed components. Digits are
//	implicitly legal and are emitted even without a mapping entry, so
//	decomposition never fails — it degrades to per-digit spelling.
//
// The mapping is loaded once from a two-column CSV (media id, value);
// only rows whose value field is purely numeric are kept. After loading
// it is immutable, so a Decomposer is safe for concurrent use.
//
// ⚙️ Usage:
//
//	m, err := numeral.LoadMapping("fingerspelling_mapper.csv")
//	dec := numeral.New(m)
//	signs := dec.Decompose(1234) // ["1000","200","30","4"] with those entries
package numeral
