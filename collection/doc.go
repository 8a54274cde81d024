// Package collection provides the concrete containers wrapped by the shape
// packages under kinds/.
//
// The containers know nothing about the higher-kinded encoding: ArrayList,
// LinkedQueue and NonEmptyList never declare a shape, so the shape packages
// box them.
//
// Element equality is structural (reflect.DeepEqual) and hashing is
// order-sensitive xxhash over each element's %v rendering, so two
// containers that are Equal hash alike.
package collection
