// Package document keeps the set of open buffers as a ring with a current
// entry. The ring never holds zero buffers: closing the last one reports
// that the session is over.
package document
