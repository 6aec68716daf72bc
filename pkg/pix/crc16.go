package pix

// crc16CCITT computes CRC-16/CCITT-FALSE over the payload bytes:
// polynomial 0x1021, initial value 0xFFFF, MSB-first, no final XOR.
// This is the checksum the PIX/EMV-QR spec mandates for field 63.
func crc16CCITT(payload string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(payload); i++ {
		crc ^= uint16(payload[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
