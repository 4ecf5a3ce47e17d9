// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

// Exit statuses following the sysexits.h convention.
const (
	// ExOK indicates successful completion.
	ExOK = 0

	// ExUsage indicates a command line usage error.
	ExUsage = 64

	// ExDataErr indicates incorrect input data.
	ExDataErr = 65

	// ExNoInput indicates a missing or unreadable input file.
	ExNoInput = 66

	// ExNoUser indicates an unknown user.
	ExNoUser = 67

	// ExNoHost indicates an unknown host.
	ExNoHost = 68

	// ExUnavailable indicates a temporarily unavailable service.
	ExUnavailable = 69

	// ExSoftware indicates an internal software error.
	ExSoftware = 70

	// ExOSErr indicates an operating system error.
	ExOSErr = 71

	// ExOSFile indicates a missing critical OS file.
	ExOSFile = 72

	// ExCantCreat indicates an output file that cannot be created.
	ExCantCreat = 73

	// ExIOErr indicates an input/output error.
	ExIOErr = 74

	// ExTempFail indicates a temporary failure worth retrying.
	ExTempFail = 75

	// ExProtocol indicates a remote protocol error.
	ExProtocol = 76

	// ExNoPerm indicates denied permission.
	ExNoPerm = 77

	// ExConfig indicates a configuration error.
	ExConfig = 78
)
