// Package language holds the small English helpers scene descriptions are
// built from: written amounts, plural nouns, gendered articles and pronouns,
// list joining and sentence capitalisation. Every function is pure.
package language
