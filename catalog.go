package zcrc

// Predefined parametrizations, transcribed from the Catalogue of
// Parametrised CRC Algorithms (reveng.sourceforge.io/crc-catalogue) and
// Koopman's Polynomial Zoo, via the values in original_source's zcrc.hpp
// (and, for Crc1, the same header's crc.hpp sibling — see DESIGN.md for
// why Crc1 is kept and Crc82Darc is not). Each is a plain Params literal:
// no lookup table is built until the first time it's actually processed.
var (
	Crc1 = Params{Width: 1, Poly: 0x1, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0}

	Crc3Gsm  = Params{Width: 3, Poly: 0x3, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x7}
	Crc3Rohc = Params{Width: 3, Poly: 0x3, Init: 0x7, RefIn: true, RefOut: true, XorOut: 0x0}

	Crc4G704       = Params{Width: 4, Poly: 0x3, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0}
	Crc4Interlaken = Params{Width: 4, Poly: 0x3, Init: 0xF, RefIn: false, RefOut: false, XorOut: 0xF}

	Crc5EpcC1g2 = Params{Width: 5, Poly: 0x09, Init: 0x09, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc5G704    = Params{Width: 5, Poly: 0x15, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc5Usb     = Params{Width: 5, Poly: 0x05, Init: 0x1F, RefIn: true, RefOut: true, XorOut: 0x1F}

	Crc6Cdma2000A = Params{Width: 6, Poly: 0x27, Init: 0x3F, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc6Cdma2000B = Params{Width: 6, Poly: 0x07, Init: 0x3F, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc6Darc      = Params{Width: 6, Poly: 0x19, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc6G704      = Params{Width: 6, Poly: 0x03, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc6Gsm       = Params{Width: 6, Poly: 0x2F, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x3F}

	Crc7Mmc  = Params{Width: 7, Poly: 0x09, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc7Rohc = Params{Width: 7, Poly: 0x4F, Init: 0x7F, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc7Umts = Params{Width: 7, Poly: 0x45, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}

	Crc8Autosar    = Params{Width: 8, Poly: 0x2F, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0xFF}
	Crc8Bluetooth  = Params{Width: 8, Poly: 0xA7, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc8Cdma2000   = Params{Width: 8, Poly: 0x9B, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Darc       = Params{Width: 8, Poly: 0x39, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc8DvbS2      = Params{Width: 8, Poly: 0xD5, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8GsmA       = Params{Width: 8, Poly: 0x1D, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8GsmB       = Params{Width: 8, Poly: 0x49, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0xFF}
	Crc8Hitag      = Params{Width: 8, Poly: 0x1D, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8I4321      = Params{Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x55}
	Crc8ICode      = Params{Width: 8, Poly: 0x1D, Init: 0xFD, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Lte        = Params{Width: 8, Poly: 0x9B, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8MaximDow   = Params{Width: 8, Poly: 0x31, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc8MifareMad  = Params{Width: 8, Poly: 0x1D, Init: 0xC7, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Nrsc5      = Params{Width: 8, Poly: 0x31, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Opensafety = Params{Width: 8, Poly: 0x2F, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Rohc       = Params{Width: 8, Poly: 0x07, Init: 0xFF, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc8SaeJ1850   = Params{Width: 8, Poly: 0x1D, Init: 0xFF, RefIn: false, RefOut: false, XorOut: 0xFF}
	Crc8Smbus      = Params{Width: 8, Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00}
	Crc8Tech3250   = Params{Width: 8, Poly: 0x1D, Init: 0xFF, RefIn: true, RefOut: true, XorOut: 0x00}
	Crc8Wcdma      = Params{Width: 8, Poly: 0x9B, Init: 0x00, RefIn: true, RefOut: true, XorOut: 0x00}

	Crc10Atm      = Params{Width: 10, Poly: 0x233, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000}
	Crc10Cdma2000 = Params{Width: 10, Poly: 0x3D9, Init: 0x3FF, RefIn: false, RefOut: false, XorOut: 0x000}
	Crc10Gsm      = Params{Width: 10, Poly: 0x175, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x3FF}

	Crc11Flexray = Params{Width: 11, Poly: 0x385, Init: 0x01A, RefIn: false, RefOut: false, XorOut: 0x000}
	Crc11Umts    = Params{Width: 11, Poly: 0x307, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000}

	Crc12Cdma2000 = Params{Width: 12, Poly: 0xF13, Init: 0xFFF, RefIn: false, RefOut: false, XorOut: 0x000}
	Crc12Dect     = Params{Width: 12, Poly: 0x80F, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0x000}
	Crc12Gsm      = Params{Width: 12, Poly: 0xD31, Init: 0x000, RefIn: false, RefOut: false, XorOut: 0xFFF}
	Crc12Umts     = Params{Width: 12, Poly: 0x80F, Init: 0x000, RefIn: false, RefOut: true, XorOut: 0x000}

	Crc13Bbc = Params{Width: 13, Poly: 0x1CF5, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}

	Crc14Darc = Params{Width: 14, Poly: 0x0805, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc14Gsm  = Params{Width: 14, Poly: 0x202D, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x3FFF}

	Crc15Can      = Params{Width: 15, Poly: 0x4599, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc15Mpt1327  = Params{Width: 15, Poly: 0x6815, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0001}

	Crc16Arc              = Params{Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Cdma2000          = Params{Width: 16, Poly: 0xC867, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Cms               = Params{Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Dds110            = Params{Width: 16, Poly: 0x8005, Init: 0x800D, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16DectR             = Params{Width: 16, Poly: 0x0589, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0001}
	Crc16DectX             = Params{Width: 16, Poly: 0x0589, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Dnp               = Params{Width: 16, Poly: 0x3D65, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xFFFF}
	Crc16En13757           = Params{Width: 16, Poly: 0x3D65, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0xFFFF}
	Crc16Genibus           = Params{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFF}
	Crc16Gsm               = Params{Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0xFFFF}
	Crc16Ibm3740           = Params{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16IbmSdlc           = Params{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF}
	Crc16IsoIec14443_3A    = Params{Width: 16, Poly: 0x1021, Init: 0xC6C6, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Kermit            = Params{Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Lj1200            = Params{Width: 16, Poly: 0x6F63, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16M17               = Params{Width: 16, Poly: 0x5935, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16MaximDow          = Params{Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: true, RefOut: true, XorOut: 0xFFFF}
	Crc16Mcrf4xx           = Params{Width: 16, Poly: 0x1021, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Modbus            = Params{Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Nrsc5             = Params{Width: 16, Poly: 0x080B, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16OpensafetyA       = Params{Width: 16, Poly: 0x5935, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16OpensafetyB       = Params{Width: 16, Poly: 0x755B, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Profibus          = Params{Width: 16, Poly: 0x1DCF, Init: 0xFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFF}
	Crc16Riello            = Params{Width: 16, Poly: 0x1021, Init: 0xB2AA, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16SpiFujitsu        = Params{Width: 16, Poly: 0x1021, Init: 0x1D0F, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16T10Dif            = Params{Width: 16, Poly: 0x8BB7, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Teledisk          = Params{Width: 16, Poly: 0xA097, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Tms37157          = Params{Width: 16, Poly: 0x1021, Init: 0x89EC, RefIn: true, RefOut: true, XorOut: 0x0000}
	Crc16Umts              = Params{Width: 16, Poly: 0x8005, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}
	Crc16Usb               = Params{Width: 16, Poly: 0x8005, Init: 0xFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFF}
	Crc16Xmodem            = Params{Width: 16, Poly: 0x1021, Init: 0x0000, RefIn: false, RefOut: false, XorOut: 0x0000}

	Crc17CanFd = Params{Width: 17, Poly: 0x1685B, Init: 0x00000, RefIn: false, RefOut: false, XorOut: 0x00000}
	Crc21CanFd = Params{Width: 21, Poly: 0x102899, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000}

	Crc24Ble        = Params{Width: 24, Poly: 0x00065B, Init: 0x555555, RefIn: true, RefOut: true, XorOut: 0x000000}
	Crc24FlexrayA   = Params{Width: 24, Poly: 0x5D6DCB, Init: 0xFEDCBA, RefIn: false, RefOut: false, XorOut: 0x000000}
	Crc24FlexrayB   = Params{Width: 24, Poly: 0x5D6DCB, Init: 0xABCDEF, RefIn: false, RefOut: false, XorOut: 0x000000}
	Crc24Interlaken = Params{Width: 24, Poly: 0x328B63, Init: 0xFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFF}
	Crc24LteA       = Params{Width: 24, Poly: 0x864CFB, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000}
	Crc24LteB       = Params{Width: 24, Poly: 0x800063, Init: 0x000000, RefIn: false, RefOut: false, XorOut: 0x000000}
	Crc24Openpgp    = Params{Width: 24, Poly: 0x864CFB, Init: 0xB704CE, RefIn: false, RefOut: false, XorOut: 0x000000}
	Crc24Os9        = Params{Width: 24, Poly: 0x800063, Init: 0xFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFF}

	Crc30Cdma    = Params{Width: 30, Poly: 0x2030B9C7, Init: 0x3FFFFFFF, RefIn: false, RefOut: false, XorOut: 0x3FFFFFFF}
	Crc31Philips = Params{Width: 31, Poly: 0x04C11DB7, Init: 0x7FFFFFFF, RefIn: false, RefOut: false, XorOut: 0x7FFFFFFF}

	Crc32          = Params{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF}
	Crc32Aixm      = Params{Width: 32, Poly: 0x814141AB, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000}
	Crc32Autosar   = Params{Width: 32, Poly: 0xF4ACFB13, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	Crc32Base91D   = Params{Width: 32, Poly: 0xA833982B, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	Crc32C         = Params{Width: 32, Poly: 0x1EDC6F41, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	Crc32CdRomEdc  = Params{Width: 32, Poly: 0x8001801B, Init: 0x00000000, RefIn: true, RefOut: true, XorOut: 0x00000000}
	Crc32Cksum     = Params{Width: 32, Poly: 0x04C11DB7, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFF}
	Crc32IsoHdlc   = Params{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFF}
	Crc32Jamcrc    = Params{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000}
	Crc32Mef       = Params{Width: 32, Poly: 0x741B8CD7, Init: 0xFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x00000000}
	Crc32Mpeg2     = Params{Width: 32, Poly: 0x04C11DB7, Init: 0xFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0x00000000}
	Crc32Xfer      = Params{Width: 32, Poly: 0x000000AF, Init: 0x00000000, RefIn: false, RefOut: false, XorOut: 0x00000000}

	Crc40Gsm = Params{Width: 40, Poly: 0x0004820009, Init: 0x0000000000, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFFFF}

	Crc64Ecma182 = Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0x0000000000000000, RefIn: false, RefOut: false, XorOut: 0x0000000000000000}
	Crc64GoIso   = Params{Width: 64, Poly: 0x000000000000001B, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}
	Crc64Ms      = Params{Width: 64, Poly: 0x259C84CBA6426349, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}
	Crc64Nvme    = Params{Width: 64, Poly: 0xAD93D23594C93659, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}
	Crc64Redis   = Params{Width: 64, Poly: 0xAD93D23594C935A9, Init: 0x0000000000000000, RefIn: true, RefOut: true, XorOut: 0x0000000000000000}
	Crc64We      = Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: false, RefOut: false, XorOut: 0xFFFFFFFFFFFFFFFF}
	Crc64Xz      = Params{Width: 64, Poly: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, RefIn: true, RefOut: true, XorOut: 0xFFFFFFFFFFFFFFFF}
)
