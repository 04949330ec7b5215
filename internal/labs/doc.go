// Package labs implements the energy-lab calculators: fuel composition,
// fuel-oil back-calculation, particulate emissions, solar plant profit,
// fault current, supply reliability with outage loss, and electrical load.
//
// Every calculator is a pure function over an immutable parameter record.
// Validation failures are reported as errors that match one of the package
// sentinels with errors.Is. Parsing raw input and formatting results for
// display are left to the caller.
package labs
