/*
 * errors.go, part of gosugar.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sugar

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from
// the error, without changing its type or wrapping it around something
// else. The decorate slice should contain a list of functions in the
// calling stack, plus, for each function, any relevant information, or
// nothing. If information is to be added to an element of the slice, it
// should be in this format: "FunctionName: Extra info". If passed an
// empty string, Decorate should just return the current value, not add
// the empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the library. It implements the
// Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of
// the error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that the error implements Error and decorates it
// with the caller's name before returning it. It will panic if used
// with an error from outside the library.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type used for the message given to panic when an
// unrecoverable problem is found. It implements error, but for regular
// errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData        = PanicMsg("gosugar: Nil data given")
	ErrNilAtom        = PanicMsg("gosugar: Nil atom given")
	ErrAtomOutOfRange = PanicMsg("gosugar: Requested atom out of range")
	ErrCoordsMismatch = PanicMsg("gosugar: Coordinates do not match the atom data")
)
