// Package domain contains the entities of the recipe service: users and the
// recipes, tags and ingredients they own. The types carry no persistence or
// transport concerns so every layer can share them.
package domain
