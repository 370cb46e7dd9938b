// Package playlist composes the segmenter, the numeral decomposer and the
// clip catalog into full conversions: a Sinhala word or a number in, an
// ordered, playable clip list out.
//
// A Playlist is the contract consumed by external players and video
// concatenators: signs in playback order, one clip reference per sign,
// and found/missing counts. Building a playlist never touches media
// bytes; concatenation, caching and serving stay outside this module.
package playlist
