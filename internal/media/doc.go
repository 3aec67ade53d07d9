// Package media holds the photo data model and its filesystem
// collaborators: the scanning walker with EXIF extraction, rename,
// thumbnail generation and the bounded thumbnail cache.
//
// PhotoItems are immutable values rebuilt on every scan; metadata map
// keys use the "<DirectoryName>:<TagName>" form (e.g. "Exif IFD0:Make")
// that the sort and field-filter layers look up.
package media
